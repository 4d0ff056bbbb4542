// Command art-trace launches a program under trace and prints every
// syscall it and its descendants make.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/creack/pty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"art/pkg/spawner"
	"art/pkg/supervisor"
	"art/pkg/traceconsumer"
)

var (
	quiet          bool
	interactive    bool
	forkEnabled    bool
	execEnabled    bool
	sysgoodEnabled bool
	allowSyscalls  string
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "art-trace -- PROGRAM [ARGS...]",
	Short: "Trace a program's syscalls via ptrace",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logrus.StandardLogger()
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}

		var allow []string
		if allowSyscalls != "" {
			for _, name := range strings.Split(allowSyscalls, ",") {
				if name = strings.TrimSpace(name); name != "" {
					allow = append(allow, name)
				}
			}
		}

		consumer := traceconsumer.NewFilteringConsumer(traceconsumer.NewTextConsumer(os.Stdout), allow)

		cfg := supervisor.Config{
			ForkEnabled:    forkEnabled,
			ExecEnabled:    execEnabled,
			SysgoodEnabled: sysgoodEnabled,
		}

		if interactive {
			return runInteractive(args, cfg, consumer, log)
		}
		return runPlain(args, cfg, consumer, log)
	},
}

// runPlain holds the OS thread lock across the entire
// Spawn→Adopt→Run session: ptrace binds the tracer relationship to the
// specific OS thread that forked the tracee, so the goroutine driving
// that session must not migrate threads for as long as it lasts.
func runPlain(args []string, cfg supervisor.Config, consumer supervisor.Consumer, log logrus.FieldLogger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	spawned, err := spawner.Spawn(spawner.Config{Argv: args, Quiet: quiet})
	if err != nil {
		return err
	}
	// The Supervisor Loop reaps the tracee itself via Wait4; release
	// os/exec's own bookkeeping on the pid now so it doesn't race that.
	if err := spawned.Release(); err != nil {
		return err
	}

	sup := supervisor.New(cfg, log)
	initial, err := sup.Adopt(spawned.PID, consumer)
	if err != nil {
		return err
	}
	return sup.Run(initial, consumer)
}

// runInteractive wires a pty between this process's terminal and the
// tracee, so an interactive program (a shell, say) under trace keeps full
// line editing and signal handling while every syscall still streams to
// stdout. Like runPlain, it holds the OS thread lock across the entire
// Spawn→Adopt→Run session.
func runInteractive(args []string, cfg supervisor.Config, consumer supervisor.Consumer, log logrus.FieldLogger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	ptmx, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	spawned, err := spawner.Spawn(spawner.Config{
		Argv:    args,
		Stdin:   tty,
		Stdout:  tty,
		Stderr:  tty,
		Setsid:  true,
		Setctty: true,
	})
	if err != nil {
		return err
	}
	tty.Close()
	// The Supervisor Loop reaps the tracee itself via Wait4; release
	// os/exec's own bookkeeping on the pid now so it doesn't race that.
	if err := spawned.Release(); err != nil {
		return err
	}

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)
	go func() {
		for range winch {
			pty.InheritSize(os.Stdin, ptmx)
		}
	}()
	winch <- syscall.SIGWINCH

	if oldState, err := term.MakeRaw(int(os.Stdin.Fd())); err == nil {
		defer term.Restore(int(os.Stdin.Fd()), oldState)
	}

	go io.Copy(ptmx, os.Stdin)
	go io.Copy(os.Stdout, ptmx)

	sup := supervisor.New(cfg, log)
	initial, err := sup.Adopt(spawned.PID, consumer)
	if err != nil {
		return err
	}
	return sup.Run(initial, consumer)
}

func init() {
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "redirect the tracee's stdout/stderr to /dev/null")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "run the tracee attached to a pty with raw-mode stdin")
	rootCmd.Flags().BoolVar(&forkEnabled, "follow-forks", true, "trace fork/vfork/clone descendants")
	rootCmd.Flags().BoolVar(&execEnabled, "trace-exec", true, "report successful execve as an Execution event and imminent exit as an Exiting event")
	rootCmd.Flags().BoolVar(&sysgoodEnabled, "sysgood", true, "set PTRACE_O_TRACESYSGOOD to disambiguate syscall stops")
	rootCmd.Flags().StringVar(&allowSyscalls, "trace-syscalls", "", "comma-separated allow-list of syscall names to print (default: all)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level operational logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
