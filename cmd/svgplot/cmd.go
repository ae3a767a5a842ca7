package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"

	"svg-plotter/internal/plot"
	"svg-plotter/internal/render"
	"svg-plotter/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	out    string
	width  int
	height int
	seed   int64
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "svgplot",
		Short:         "Render R/C/P/L shape commands as SVG",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetOutput(cmd.ErrOrStderr())
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newRenderCmd(), newCheckCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render commands from a file (or stdin) to SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var src plot.RandomSource = plot.DefaultSource()
			if cmd.Flags().Changed("seed") {
				src = rand.New(rand.NewSource(opts.seed))
			}
			if opts.width <= 0 || opts.height <= 0 {
				return fmt.Errorf("canvas size must be positive, got %dx%d", opts.width, opts.height)
			}
			plotService := service.NewPlotService(src, render.Canvas{Width: opts.width, Height: opts.height})

			result, err := plotService.Draw(context.Background(), input)
			if err != nil {
				return reportError(cmd, err)
			}

			if opts.out != "" && opts.out != "-" {
				return writeFile(opts.out, result.SVG)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), result.SVG)
			return err
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&opts.width, "width", render.DefaultWidth, "canvas width")
	cmd.Flags().IntVar(&opts.height, "height", render.DefaultHeight, "canvas height")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "seed for reproducible colors")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate commands without rendering",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			plotService := service.NewPlotService(plot.DefaultSource(), render.DefaultCanvas())
			if err := plotService.Check(context.Background(), input); err != nil {
				return reportError(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	}
	b, err := os.ReadFile(args[0])
	return string(b), err
}

// reportedError 表示错误信息已经写给用户
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// reportError 把用户可见的错误信息写到 stderr
func reportError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), service.UserMessage(err))
	return reportedError{err: err}
}

// writeFile 写入并关闭输出文件，关闭失败同样视为写入失败
func writeFile(path, content string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
