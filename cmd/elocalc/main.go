package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/goserg/elocalc/internal/config"
	"github.com/goserg/elocalc/internal/elo"
	"github.com/goserg/elocalc/internal/logger"
	"github.com/goserg/elocalc/internal/web"
	"github.com/sirupsen/logrus"
)

const usage = `usage:
  elocalc [-config file] outcome <ratingA> <ratingB> <draw|a|b>
  elocalc [-config file] points [-method classic|fraction|bonus] [-outcome draw|a|b] <ratingA> <ratingB> <pointsA> <pointsB>
  elocalc [-config file] serve`

var errUsage = errors.New(usage)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("elocalc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("config", "", "path to toml config")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w\n%v", err, usage)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}
	calc := cfg.Elo.Calculator()
	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "outcome":
		return runOutcome(calc, cmdArgs, out)
	case "points":
		return runPoints(calc, cfg.Elo.Method, cmdArgs, out)
	case "serve":
		return runServe(calc, cfg)
	}
	return fmt.Errorf("unknown command %q\n%w", cmd, errUsage)
}

func runOutcome(calc elo.Calculator, args []string, out io.Writer) error {
	if len(args) != 3 {
		return errUsage
	}
	ratings, err := parseFloats(args[:2])
	if err != nil {
		return err
	}
	var outcome elo.Outcome
	if err := outcome.UnmarshalText([]byte(args[2])); err != nil {
		return err
	}
	newA, newB, err := calc.UpdateFromOutcome(ratings[0], ratings[1], outcome)
	if err != nil {
		return err
	}
	printRatings(out, ratings[0], ratings[1], newA, newB)
	return nil
}

func runPoints(calc elo.Calculator, method elo.Method, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("points", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	methodFlag := fs.String("method", "", "update method, configured method when empty")
	outcomeFlag := fs.String("outcome", "", "outcome override, derived from points when empty")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w\n%v", err, usage)
	}
	if fs.NArg() != 4 {
		return errUsage
	}
	values, err := parseFloats(fs.Args())
	if err != nil {
		return err
	}
	if *methodFlag != "" {
		if err := method.UnmarshalText([]byte(*methodFlag)); err != nil {
			return err
		}
	}
	opts := []elo.PointsOption{elo.WithMethod(method)}
	if *outcomeFlag != "" {
		var outcome elo.Outcome
		if err := outcome.UnmarshalText([]byte(*outcomeFlag)); err != nil {
			return err
		}
		opts = append(opts, elo.WithOutcome(outcome))
	}
	newA, newB, err := calc.UpdateFromPoints(values[0], values[1], values[2], values[3], opts...)
	if err != nil {
		return err
	}
	printRatings(out, values[0], values[1], newA, newB)
	return nil
}

func runServe(calc elo.Calculator, cfg config.Config) error {
	log := logger.New(os.Stderr, cfg.Server.Debug)
	log.WithFields(logrus.Fields{
		"k_factor": cfg.Elo.KFactor,
		"c_value":  cfg.Elo.CValue,
		"l_factor": cfg.Elo.LFactor,
		"method":   cfg.Elo.Method,
	}).Info("starting elo server")

	server := web.New(calc, cfg.Elo.Method, cfg.Server, log)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		if err := server.Shutdown(); err != nil {
			log.WithError(err).Error("shutdown")
		}
	}()
	return server.Serve()
}

func parseFloats(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", arg)
		}
		values[i] = v
	}
	return values, nil
}

func printRatings(out io.Writer, oldA, oldB, newA, newB float64) {
	fmt.Fprintf(out, "A: %.2f -> %.2f (%+.2f)\n", oldA, newA, newA-oldA)
	fmt.Fprintf(out, "B: %.2f -> %.2f (%+.2f)\n", oldB, newB, newB-oldB)
}
