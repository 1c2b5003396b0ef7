// reqcheck is the operator CLI: check one requirement string against a
// student record, or inspect how a string tokenizes and parses.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/awmpietro/prereq-inference-case/internal/requirement"
)

var studentFile string

var rootCmd = &cobra.Command{
	Use:   "reqcheck",
	Short: "Check course prerequisite requirements against a student record",
}

var checkCmd = &cobra.Command{
	Use:   "check \"REQUIREMENT\"",
	Short: "Evaluate a requirement string against a student record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStudent(studentFile)
		if err != nil {
			return err
		}

		req, err := requirement.ParseString(args[0])
		if err != nil {
			color.Yellow("unverifiable: %v", err)
			os.Exit(2)
		}

		ok, missing := requirement.Evaluate(req, st)
		if ok {
			color.Green("satisfied")
			return nil
		}

		color.Red("not satisfied")
		fmt.Printf("missing: %s\n", missing)
		os.Exit(1)
		return nil
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph \"REQUIREMENT\"",
	Short: "Print the parsed requirement tree as a Graphviz digraph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := requirement.ParseString(args[0])
		if err != nil {
			return err
		}
		dot, err := requirement.DOT(req)
		if err != nil {
			return err
		}
		fmt.Print(dot)
		return nil
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens \"REQUIREMENT\"",
	Short: "Dump the token sequence of a requirement string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		toks, err := requirement.Tokenize(args[0])
		if err != nil {
			return err
		}
		for _, t := range toks {
			fmt.Printf("%4d  %-24s %q\n", t.Pos, t.Kind, t.Text)
		}
		return nil
	},
}

func loadStudent(path string) (*requirement.StudentRecord, error) {
	st := &requirement.StudentRecord{}
	if path == "" {
		return st, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read student file: %w", err)
	}
	if err := yaml.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("failed to parse student file: %w", err)
	}
	return st, nil
}

func main() {
	checkCmd.Flags().StringVarP(&studentFile, "student", "s", "", "YAML file with the student record")
	rootCmd.AddCommand(checkCmd, graphCmd, tokensCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
