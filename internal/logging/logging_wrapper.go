package logging

import (
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader is read from incoming requests and echoed on responses.
const RequestIDHeader = "X-Request-ID"

// LoggingWrapper adapts a plain handler and gives every request its own
// LogData.
func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		requestID := requestID(req.Header.Get(RequestIDHeader))
		logData.AddData("requestID", requestID)
		w.Header().Set(RequestIDHeader, requestID)

		log.WithField("requestID", requestID).Infof("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		err := handler(w, req.WithContext(WithLogData(req.Context(), logData)), logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

func requestID(incoming string) string {
	if incoming != "" {
		return incoming
	}
	id, err := uuid.NewV4()
	if err != nil {
		return "unknown"
	}
	return id.String()
}
