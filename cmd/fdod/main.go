package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	kconf "github.com/mardi4nfdi/fdofacade/pkg/configs/fdod"
	"github.com/mardi4nfdi/fdofacade/pkg/echoutil"
	"github.com/mardi4nfdi/fdofacade/pkg/fdo"
	"github.com/mardi4nfdi/fdofacade/pkg/metrics"
	"github.com/mardi4nfdi/fdofacade/pkg/utils/filewatch"
	"github.com/mardi4nfdi/fdofacade/pkg/wikibase"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/mardi4nfdi/fdofacade/cmd/fdod/handlers"
)

const gracefulTimeout = 15 * time.Second

func main() {
	configPath := flag.String("config-path", "", "fdod config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	flag.Parse()

	if *configPath == "" {
		log.Fatalln("-config-path is required")
	}

	// read configfile
	conf, err := kconf.Load(*configPath)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = echoutil.JSONSerializer{}

	// set log
	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = echoutil.ErrorHandler(e)
	e.Use(middleware.Recover())
	e.Use(echoutil.LogHandlerFunc)

	backend := conf.Backend()
	client, err := wikibase.NewClient(
		backend.ApiRoot(),
		wikibase.WithTimeout(backend.Timeout()),
		wikibase.WithLanguage(backend.Language()),
		wikibase.WithUserAgent(backend.UserAgent()),
	)
	if err != nil {
		log.Fatalf("can not create knowledge graph client: %s", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(reg)
	if err != nil {
		log.Fatalf("can not register metrics: %s", err)
	}

	tr := fdo.NewTranslator(conf.TranslatorOptions())

	// handlers
	{
		e.GET("/", handlers.RootHandler())
		e.GET("/health", handlers.HealthHandler())
		e.GET("/favicon.ico", handlers.FaviconHandler())
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(reg)))
		mws := []echo.MiddlewareFunc{}
		if rl := echoutil.RateLimiter(conf.Server().RateLimit(), conf.Server().RateBurst()); rl != nil {
			mws = append(mws, rl)
		}
		e.GET("/fdo/:id", handlers.GetFDOHandler(client, tr, m, "id"), mws...)
	}
	log.Println("registred routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wctx, cancel, err := filewatch.UntilModifyContext(ctx, *configPath)
	if err != nil {
		log.Fatalf("can not watch configration: %s", err)
	}
	defer cancel()

	eg, gctx := errgroup.WithContext(wctx)
	eg.Go(func() error {
		addr := ":" + conf.Server().Port()
		var err error
		if cert, key := *pcert, *pkey; cert != "" && key != "" {
			err = e.StartTLS(addr, cert, key)
		} else {
			err = e.Start(addr)
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	eg.Go(func() error {
		<-gctx.Done()
		cause := context.Cause(gctx)

		graceful, cancel := context.WithTimeout(context.Background(), gracefulTimeout)
		defer cancel()
		if err := e.Shutdown(graceful); err != nil {
			log.Printf("error on shutdown: %s", err)
		}

		if errors.Is(cause, filewatch.ErrModified) {
			return fmt.Errorf("config file is updated. quit to restart server: %w", cause)
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}
}
