// pacmaze is a terminal maze-chase arcade game.
//
// Usage:
//
//	pacmaze play             - Play in the current terminal
//	pacmaze serve            - Start SSH server for remote play
//	pacmaze scores           - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.pacmaze/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/mkarwowski/pacmaze/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacmaze",
	Short: "Pacmaze - a maze-chase arcade game in your terminal",
	Long: `Pacmaze is a terminal rendition of the classic maze chase: eat every
pellet, dodge four ghosts with very different personalities, and grab
power-ups to turn the hunt around.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  pacmaze play
  pacmaze play --stage ./my-stage.yaml
  pacmaze serve --ssh :2222
  pacmaze scores --interactive`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pacmaze/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
