package main

import (
	"log"
	"net/http"

	"github.com/awmpietro/prereq-inference-case/internal/app"
	"github.com/awmpietro/prereq-inference-case/internal/config"
	"github.com/awmpietro/prereq-inference-case/internal/gate"
	"github.com/awmpietro/prereq-inference-case/internal/requirement"
	"github.com/awmpietro/prereq-inference-case/internal/requirement/cache"
	"github.com/awmpietro/prereq-inference-case/internal/transport/httptransport"
)

func main() {
	cfg := config.Load()

	g, err := gate.New(cfg.GateCond)
	if err != nil {
		log.Fatalf("bad REQ_GATE_COND: %v", err)
	}

	latencyObserver := requirement.NewAsyncEvalLatencyObserver(requirement.NewEvalLatencyLogger(log.Default()), cfg.ObsBuffer)
	defer latencyObserver.Close()

	parser := requirement.NewParser()
	evaluator := requirement.NewEvaluator(requirement.WithEvalLatencyObserver(latencyObserver))
	c := cache.NewInMemory(cfg.CacheMaxItems)

	svc := app.NewService(parser, evaluator, c, g)
	h := httptransport.NewHandler(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("/check", h.Check)
	mux.HandleFunc("/parse", h.Parse)

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, mux))
}
