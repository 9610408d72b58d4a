package main

import (
	"embed"
	"os"
	"time"

	"git.cmcode.dev/cmcode/finance-calendar-tui/lib"
	"git.cmcode.dev/cmcode/finance-calendar-tui/printer"
	"git.cmcode.dev/cmcode/finance-calendar-tui/store"
	"git.cmcode.dev/cmcode/finance-calendar-tui/themes"
	"git.cmcode.dev/cmcode/finance-calendar-tui/translations"

	"github.com/sirupsen/logrus"
)

//go:embed translations/*.yml
var AllTranslations embed.FS

//go:embed themes/*.yml
var AllThemes embed.FS

//go:embed example.yml
var ExampleConfig embed.FS

// startDate returns the first day of the month given by the month flag, or
// now if the flag is empty.
func startDate(month string, now time.Time) (time.Time, error) {
	if month == "" {
		return now, nil
	}

	year, m, err := lib.ParseMonth(month)
	if err != nil {
		return now, err
	}

	return time.Date(year, time.Month(m+1), 1, 0, 0, 0, 0, time.UTC), nil
}

func main() {
	t, err := translations.Load(AllTranslations, translations.Language(""))
	if err != nil {
		logrus.Fatalf("failed to load translations: %v", err.Error())
	}

	flags, err := parseFlags(os.Args[1:], t, os.Stderr)
	if err != nil {
		logrus.Fatalf("%v: %v", t["ErrorFailedToParseFlags"], err.Error())
	}

	envOverrides, err := loadEnv()
	if err != nil {
		logrus.Fatalf("%v: %v", t["ErrorFailedToParseEnv"], err.Error())
	}

	conf, configFile, fromExample, err := loadConfig(firstNonEmpty(flags.ConfigFile, envOverrides.ConfigFile), t, ExampleConfig)
	if err != nil {
		logrus.Fatalf("%v: %v", t["ErrorFailedToLoadConfig"], err.Error())
	}

	processConfig(&conf)

	if fromExample {
		err = writeConfig(configFile, conf)
		if err != nil {
			logrus.Warnf("failed to write initial config: %v", err.Error())
		}
	}

	applyOverrides(&conf, envOverrides, flags)

	log, logCloser, err := setupLogger(conf.LogLevel, flags.Print)
	if err != nil {
		logrus.Fatalf("%v: %v", t["ErrorFailedToSetupLogger"], err.Error())
	}

	defer logCloser.Close()

	log.WithFields(logrus.Fields{
		"config": configFile,
		"store":  conf.Store.Backend,
		"theme":  conf.Theme,
	}).Info("starting")

	if conf.Language != "" {
		t, err = translations.Load(AllTranslations, translations.Language(conf.Language))
		if err != nil {
			log.Fatalf("%v: %v", t["ErrorFailedToLoadTranslations"], err.Error())
		}
	}

	colors, err := themes.Load(AllThemes, conf.Theme)
	if err != nil {
		log.Fatalf("%v: %v", t["ErrorFailedToLoadThemes"], err.Error())
	}

	start, err := startDate(flags.Month, time.Now())
	if err != nil {
		log.Fatalf("%v: %v", t["ErrorFailedToParseMonth"], err.Error())
	}

	kv, err := store.Open(conf.Store)
	if err != nil {
		log.Fatalf("%v: %v", t["ErrorFailedToOpenStore"], err.Error())
	}

	defer kv.Close()

	if flags.Print {
		printer.PrintMonth(os.Stdout, start.Year(), int(start.Month())-1, store.Load(kv, log), t, printer.Options{
			Colors: os.Getenv("NO_COLOR") == "",
		})

		return
	}

	f := NewFinanceCalendar(conf, t, colors, kv, log, start)
	f.FlagKeyboardEchoMode = flags.KeyboardEchoMode

	f.bootstrap()

	if err := f.App.EnableMouse(true).Run(); err != nil {
		log.WithError(err).Error("application exited with an error")
		panic(err)
	}
}
