package messaging

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/zeromicro/go-zero/core/logx"
)

// watermillLogger Watermill 日志适配器，转发到 logx
type watermillLogger struct {
	serviceName string
}

// newWatermillLogger 创建 Watermill 日志适配器
func newWatermillLogger(serviceName string) watermill.LoggerAdapter {
	return &watermillLogger{
		serviceName: serviceName,
	}
}

func (l *watermillLogger) Error(msg string, err error, fields watermill.LogFields) {
	logx.Errorf("[MQ] [%s] %s: %v %v", l.serviceName, msg, err, fields)
}

func (l *watermillLogger) Info(msg string, fields watermill.LogFields) {
	logx.Infof("[MQ] [%s] %s %v", l.serviceName, msg, fields)
}

func (l *watermillLogger) Debug(msg string, fields watermill.LogFields) {
	logx.Debugf("[MQ] [%s] %s %v", l.serviceName, msg, fields)
}

func (l *watermillLogger) Trace(msg string, fields watermill.LogFields) {
	logx.Debugf("[MQ] [%s] %s %v", l.serviceName, msg, fields)
}

func (l *watermillLogger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	// 简单实现，返回自身
	return l
}
