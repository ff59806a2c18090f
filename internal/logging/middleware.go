package logging

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware is the huma counterpart of LoggingWrapper. Handlers reach the
// request's LogData through GetLogData.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		name := "unknown"
		if op := ctx.Operation(); op != nil && op.OperationID != "" {
			name = op.OperationID
		}

		logData := NewLogData(log)
		requestID := requestID(ctx.Header(RequestIDHeader))
		logData.AddData("requestID", requestID)
		logData.AddData("method", ctx.Method())
		ctx.SetHeader(RequestIDHeader, requestID)

		log.WithField("requestID", requestID).Infof("Handler.%v.Start", name)

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		status := ctx.Status()
		if status == 0 {
			status = http.StatusOK
		}
		logData.AddData("status", status)
		if status >= http.StatusInternalServerError {
			logData.Log().Errorf("Handler.%v.Error", name)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", name)
	}
}
