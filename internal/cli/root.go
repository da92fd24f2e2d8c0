package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// Root prints the greeting and hands control to the REPL.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Product catalog CLI. Type 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userName
	}
	return "not logged in"
}
