package internal

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

const maxProgramSize = 1 << 20

// EvalHandler serves program evaluation over HTTP. Every request gets its
// own run, so requests never share variables.
func EvalHandler(logger logrus.FieldLogger) fasthttp.RequestHandler {
	if logger == nil {
		logger = discardLogger()
	}
	return func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case "/eval":
			handleEval(ctx, logger)
		case "/healthz":
			ctx.SetContentType("text/plain; charset=utf-8")
			ctx.SetBodyString("ok")
		default:
			ctx.Error("not found", fasthttp.StatusNotFound)
		}
	}
}

func handleEval(ctx *fasthttp.RequestCtx, logger logrus.FieldLogger) {
	if !ctx.IsPost() {
		ctx.Response.Header.Set("Allow", fasthttp.MethodPost)
		ctx.Error("method not allowed", fasthttp.StatusMethodNotAllowed)
		return
	}

	opts := Options{
		Strict: string(ctx.QueryArgs().Peek("strict")) == "1",
		Logger: logger.WithField("remote", ctx.RemoteAddr().String()),
	}

	ctx.SetContentType("text/plain; charset=utf-8")
	report, err := RunSource(string(ctx.PostBody()), opts)
	if err != nil {
		opts.Logger.WithField("kind", errorKind(err)).Info(err)
		ctx.SetStatusCode(fasthttp.StatusUnprocessableEntity)
		ctx.SetBodyString(ErrorIndicator)
		return
	}
	ctx.SetBodyString(report.String())
}

// NewServer returns a fasthttp server wired to EvalHandler
func NewServer(logger logrus.FieldLogger) *fasthttp.Server {
	return &fasthttp.Server{
		Handler:            EvalHandler(logger),
		Name:               "assignlang",
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       10 * time.Second,
		MaxRequestBodySize: maxProgramSize,
	}
}
