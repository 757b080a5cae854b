package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log 全局日志实例，供中间件使用
// Services receive their logger through constructors instead.
var Log *zap.Logger

// New 根据运行模式创建 zap 日志
func New(mode string) (*zap.Logger, error) {
	var cfg zap.Config
	if mode == "release" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg.Build()
}

// Init 创建日志并设置全局实例
func Init(mode string) (*zap.Logger, error) {
	l, err := New(mode)
	if err != nil {
		return nil, err
	}
	Log = l
	return l, nil
}
