package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/awmpietro/prereq-inference-case/internal/app"
	"github.com/awmpietro/prereq-inference-case/internal/config"
	"github.com/awmpietro/prereq-inference-case/internal/gate"
	"github.com/awmpietro/prereq-inference-case/internal/requirement"
	"github.com/awmpietro/prereq-inference-case/internal/requirement/cache"
	"github.com/awmpietro/prereq-inference-case/internal/transport/lambdatransport"
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
	h := lambdatransport.NewHandler(svc)

	lambda.Start(h.Check)
}
