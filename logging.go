package bootstrap

import (
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/bootstrap/backend"
)

// Sink receives diagnostic messages from the validation layers.
type Sink interface {
	Message(msg string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(msg string)

func (f SinkFunc) Message(msg string) { f(msg) }

// severitySink is implemented by sinks that also want the severity and
// category of each message.
type severitySink interface {
	Sink
	Log(severity backend.MessageSeverity, msgType backend.MessageType, msg string)
}

// LogSink writes validation messages to logger. Errors are logged at error
// level and everything else at warning level.
func LogSink(logger logrus.FieldLogger) Sink {
	return logSink{logger: logger.WithField("source", "validation")}
}

type logSink struct {
	logger logrus.FieldLogger
}

func (s logSink) Message(msg string) {
	s.logger.Error(msg)
}

func (s logSink) Log(severity backend.MessageSeverity, msgType backend.MessageType, msg string) {
	entry := s.logger.WithFields(logrus.Fields{
		"severity": severity.String(),
		"type":     msgType.String(),
	})
	if severity&backend.SeverityError != 0 {
		entry.Error(msg)
		return
	}
	entry.Warn(msg)
}

// deliver hands a message to sink, with severity when the sink takes it.
func deliver(sink Sink, severity backend.MessageSeverity, msgType backend.MessageType, msg string) {
	if s, ok := sink.(severitySink); ok {
		s.Log(severity, msgType, msg)
		return
	}
	sink.Message(msg)
}
