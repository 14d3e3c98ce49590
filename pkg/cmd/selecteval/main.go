package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/chuyangliu/selecteval/pkg/algods/algo"
	"github.com/chuyangliu/selecteval/pkg/expr"
	"github.com/chuyangliu/selecteval/pkg/logging"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Missing command.")
		printUsage()
		os.Exit(1)
	}

	kthCmd := flag.NewFlagSet("kth", flag.ExitOnError)
	kthK := kthCmd.Int("k", 1, "Rank of the value to select (1 = largest).")
	kthLevel := kthCmd.String("loglevel", "info", "Log level (debug/info/warn/error or 0/1/2/3).")

	foldCmd := flag.NewFlagSet("fold", flag.ExitOnError)
	foldOp := foldCmd.String("op", "add", "Operator joining the values (add/sub/mul/div).")
	foldLevel := foldCmd.String("loglevel", "info", "Log level (debug/info/warn/error or 0/1/2/3).")

	var err error
	switch os.Args[1] {
	case "kth":
		kthCmd.Parse(os.Args[2:])
		err = execKth(*kthLevel, *kthK, kthCmd.Args())
	case "fold":
		foldCmd.Parse(os.Args[2:])
		err = execFold(*foldLevel, *foldOp, foldCmd.Args())
	default:
		fmt.Printf("Unrecognized command \"%v\"\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("\nUsage:")
	fmt.Printf("\n\t%v <command> [arguments] <values...>\n", os.Args[0])
	fmt.Println("\nThe commands are:")
	fmt.Println("\n\tkth\tprint the k-th largest of integer values")
	fmt.Println("\tfold\tjoin numeric values with an operator, print the expression and its value")
	fmt.Println("")
}

func execKth(levelName string, k int, args []string) error {
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	logger := logging.New(level)

	nums := make([]int, len(args))
	for i, arg := range args {
		if nums[i], err = strconv.Atoi(arg); err != nil {
			return fmt.Errorf("Invalid integer | index=%v | arg=%q", i, arg)
		}
	}

	logger.Debug("Kth | k=%v | len=%v", k, len(nums))
	kth, err := algo.FindKthLargest(nums, k)
	if err != nil {
		return err
	}
	fmt.Println(kth)
	return nil
}

func execFold(levelName string, opName string, args []string) error {
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}

	op, err := expr.ParseOperator(opName)
	if err != nil {
		return err
	}

	values := make([]float64, len(args))
	for i, arg := range args {
		if values[i], err = strconv.ParseFloat(arg, 64); err != nil {
			return fmt.Errorf("Invalid number | index=%v | arg=%q", i, arg)
		}
	}

	e, err := expr.Fold(op, values...)
	if err != nil {
		return err
	}
	val, err := expr.NewContext(level).Eval(context.Background(), e)
	if err != nil {
		return err
	}
	fmt.Printf("%v = %v\n", e, val)
	return nil
}
