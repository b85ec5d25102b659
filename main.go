package main

import (
	"os"

	"github.com/stmtkit/bankparse/cmd/batch"
	"github.com/stmtkit/bankparse/cmd/keywords"
	"github.com/stmtkit/bankparse/cmd/root"
	"github.com/stmtkit/bankparse/cmd/tabular"
	"github.com/stmtkit/bankparse/cmd/text"
)

func init() {
	root.Init()
	batch.Init()

	root.Cmd.AddCommand(tabular.Cmd)
	root.Cmd.AddCommand(text.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(keywords.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
