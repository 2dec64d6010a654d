// Package cmd wires the configuration, polling loop, hotkeys and UI
// together behind a cobra command.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/leobrqz/AutoPot-DR/internal/config"
	"github.com/leobrqz/AutoPot-DR/internal/history"
	"github.com/leobrqz/AutoPot-DR/internal/hotkey"
	"github.com/leobrqz/AutoPot-DR/internal/input"
	"github.com/leobrqz/AutoPot-DR/internal/memory"
	"github.com/leobrqz/AutoPot-DR/internal/monitor"
	"github.com/leobrqz/AutoPot-DR/internal/output"
	"github.com/leobrqz/AutoPot-DR/ui/console"
	"github.com/leobrqz/AutoPot-DR/ui/tui"
)

const (
	defaultConfigPath  = "config_user.ini"
	defaultHistoryPath = "triggers.db"
	eventBufferSize    = 256
	consolePrintEvery  = time.Second
)

func Execute() error {
	return newRootCmd().Execute()
}

// ExecuteContext runs the root command under the given context so signal
// cancellation reaches the polling loop.
func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath     string
		processName string
		historyPath string
		noUI        bool
		dryRun      bool
	)

	rootCmd := &cobra.Command{
		Use:           "autopot",
		Short:         "Auto potion overlay: watches game HP and presses the potion key below a threshold",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfgPath, processName, historyPath, noUI, dryRun)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", defaultConfigPath, "path to the INI config file")
	rootCmd.Flags().StringVar(&processName, "process", "", "override the game process name from the config")
	rootCmd.Flags().StringVar(&historyPath, "history", defaultHistoryPath, "path to the trigger log database")
	rootCmd.Flags().BoolVar(&noUI, "no-ui", false, "run headless with console status output")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "record key presses instead of sending them")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func run(ctx context.Context, cfgPath, processName, historyPath string, noUI, dryRun bool) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if processName != "" {
		cfg.ProcessName = processName
	}

	cur, max, potions, err := cfg.Chains()
	if err != nil {
		return fmt.Errorf("parse pointer chains: %w", err)
	}

	triggers, err := history.Open(historyPath)
	if err != nil {
		// Triggering still works without the log; keep going.
		fmt.Fprintf(os.Stderr, "warning: trigger log unavailable: %v\n", err)
		triggers = nil
	}
	defer triggers.Close()

	flags := monitor.NewFlags(true, cfg.Locked)

	var sender input.Sender
	if dryRun {
		sender = &input.Recorder{}
	} else {
		sender = input.NewSender()
	}

	mon, err := monitor.New(monitor.Config{
		ProcessName: cfg.ProcessName,
		Interval:    time.Duration(cfg.PollIntervalMs) * time.Millisecond,
		Cooldown:    time.Duration(cfg.CooldownMs) * time.Millisecond,
		Threshold:   cfg.HealthThreshold,
		PotionKey:   cfg.PotionKey,
		Current:     cur,
		Max:         max,
		Potions:     potions,
	}, memory.Open, sender, flags, triggers)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan monitor.Event, eventBufferSize)
	go mon.Run(ctx, events)

	actions, err := hotkey.Listen(ctx, hotkey.Bindings{
		Lock:   cfg.HotkeyLock,
		Toggle: cfg.HotkeyToggle,
		Close:  cfg.HotkeyClose,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: global hotkeys unavailable: %v\n", err)
		actions = nil
	}

	if noUI {
		return runConsole(ctx, cfg, flags, triggers, events, actions)
	}

	p := tui.NewProgram(cfg, flags, events, triggers)
	go forwardHotkeys(ctx, p, actions)

	_, err = p.Run()
	return err
}

// forwardHotkeys turns OS hotkey actions into Bubble Tea messages.
func forwardHotkeys(ctx context.Context, p *tea.Program, actions <-chan hotkey.Action) {
	for {
		select {
		case <-ctx.Done():
			return
		case a, ok := <-actions:
			if !ok {
				return
			}
			p.Send(tui.HotkeyMsg(a))
		}
	}
}

// runConsole is the headless mode: status lines instead of the overlay.
func runConsole(ctx context.Context, cfg *config.Store, flags *monitor.Flags, triggers *history.Store, events <-chan monitor.Event, actions <-chan hotkey.Action) error {
	var (
		snap      memory.Snapshot
		loopState = monitor.StateSearching
		lastPrint time.Time
	)

	printStatus := func() {
		recent := recentTriggers(triggers)
		view := output.BuildStatus(loopState, snap, flags.Enabled(), flags.Locked(), cfg.HealthThreshold, recent)
		console.Print(os.Stdout, view)
		lastPrint = time.Now()
	}

	printStatus()
	for {
		select {
		case <-ctx.Done():
			return nil

		case a := <-actions:
			switch a {
			case hotkey.ActionToggle:
				flags.ToggleEnabled()
				printStatus()
			case hotkey.ActionLock:
				flags.ToggleLocked()
			case hotkey.ActionClose:
				return nil
			}

		case ev := <-events:
			loopState = ev.State
			switch ev.Kind {
			case monitor.EventStateChanged, monitor.EventPotionUsed:
				if ev.Kind == monitor.EventPotionUsed {
					fmt.Fprintf(os.Stdout, "potion used at %.1f%% HP\n", ev.HPPct)
				}
				snap = ev.Snapshot
				printStatus()
			case monitor.EventSnapshot:
				snap = ev.Snapshot
				if time.Since(lastPrint) >= consolePrintEvery {
					printStatus()
				}
			case monitor.EventReadSkipped:
				if ev.Err != nil {
					fmt.Fprintf(os.Stderr, "read skipped: %v\n", ev.Err)
				}
			case monitor.EventPressFailed:
				fmt.Fprintf(os.Stderr, "potion key press failed: %v\n", ev.Err)
			}
		}
	}
}

func recentTriggers(triggers *history.Store) []history.Entry {
	if triggers == nil {
		return nil
	}
	recent, err := triggers.Recent(5)
	if err != nil {
		return nil
	}
	return recent
}
