package launcher

import (
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/evalphobia/logrus_sentry"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"
)

const sentryTimeout = 5 * time.Second

// setupLogging configures logrus from the logging flags and routes the
// library logs into it.
func setupLogging(ctx *cli.Context) error {
	cfg := DefaultConfig().Logging
	if ctx.IsSet("log.format") {
		cfg.Format = ctx.String("log.format")
	}
	if ctx.IsSet("log.verbosity") {
		cfg.Verbosity = ctx.Int("log.verbosity")
	}
	return configureLogger(logrus.StandardLogger(), cfg, ctx.String("sentry.dsn"))
}

func configureLogger(logger *logrus.Logger, cfg LoggingDefaults, sentryDSN string) error {
	switch cfg.Format {
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("unknown log format %q (valid: text, json)", cfg.Format)
	}
	if cfg.Verbosity < 0 || cfg.Verbosity > 5 {
		return errors.Errorf("log verbosity %d out of range 0..5", cfg.Verbosity)
	}
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.Level(cfg.Verbosity + 1))

	if sentryDSN != "" {
		hook, err := logrus_sentry.NewSentryHook(sentryDSN, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return errors.Wrap(err, "sentry hook")
		}
		hook.Timeout = sentryTimeout
		logger.AddHook(hook)
	}

	log.Root().SetHandler(log.LvlFilterHandler(log.Lvl(cfg.Verbosity), logrusHandler(logger)))
	return nil
}

// logrusHandler forwards go-ethereum log records to logger.
func logrusHandler(logger *logrus.Logger) log.Handler {
	return log.FuncHandler(func(r *log.Record) error {
		fields := make(logrus.Fields, len(r.Ctx)/2)
		for i := 0; i+1 < len(r.Ctx); i += 2 {
			fields[fmt.Sprint(r.Ctx[i])] = r.Ctx[i+1]
		}
		logger.WithFields(fields).Log(logrusLevel(r.Lvl), r.Msg)
		return nil
	})
}

func logrusLevel(lvl log.Lvl) logrus.Level {
	switch lvl {
	case log.LvlCrit, log.LvlError:
		return logrus.ErrorLevel
	case log.LvlWarn:
		return logrus.WarnLevel
	case log.LvlInfo:
		return logrus.InfoLevel
	case log.LvlDebug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
