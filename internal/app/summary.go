package app

import (
	"strings"

	"herald/internal/channel"
	"herald/internal/logger"
)

// StartupSummary 记录启动时的关键配置，仅写入日志，不占用交互输出。
type StartupSummary struct {
	Env      string
	Lang     string
	Channels []channel.Channel
}

func (s *StartupSummary) Log() {
	logger.Infof("启动配置摘要：环境=%s，语言=%s，渠道=%s", s.Env, s.Lang, formatChannels(s.Channels))
}

func formatChannels(chs []channel.Channel) string {
	if len(chs) == 0 {
		return "-"
	}
	names := make([]string, 0, len(chs))
	for _, ch := range chs {
		names = append(names, ch.Key())
	}
	return strings.Join(names, ", ")
}
