package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"herald/internal/channel"
	hcfg "herald/internal/config"
	"herald/internal/i18n"
	"herald/internal/logger"
	"herald/internal/registry"
	"herald/internal/service"
)

// App 负责一次交互：菜单→选择渠道→解析 sender→读取消息→发送。
type App struct {
	cfg      *hcfg.Config
	catalog  i18n.Catalog
	registry *registry.Registry
	in       io.Reader
	out      io.Writer
	Summary  *StartupSummary
}

// NewApp 根据配置构建应用对象（不启动）
func NewApp(cfg *hcfg.Config, streams Streams) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	logger.SetLevel(cfg.App.LogLevel)
	return buildAppWithWire(context.Background(), cfg, streams)
}

// Catalog 返回当前语言的文案。
func (a *App) Catalog() i18n.Catalog {
	return a.catalog
}

// Run 执行唯一的一轮交互。非法菜单选择返回匹配 channel.ErrInvalidSelection 的错误，且不会输出提示或通知。
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.cfg == nil {
		return fmt.Errorf("app not initialized")
	}
	if a.Summary != nil {
		a.Summary.Log()
	}

	in := bufio.NewReader(a.in)
	if _, err := fmt.Fprintln(a.out, a.catalog.Menu); err != nil {
		return fmt.Errorf("write menu: %w", err)
	}
	line, err := readLine(in)
	if err != nil {
		return fmt.Errorf("read selection: %w", err)
	}
	ch, err := channel.ParseSelection(line)
	if err != nil {
		logger.Warnf("菜单选择无效 input=%q: %v", line, err)
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.dispatch(ctx, ch, in)
}

// dispatch 对应一次作用域：sender 与 service 只存活于本函数内。
func (a *App) dispatch(ctx context.Context, ch channel.Channel, in *bufio.Reader) error {
	sender, err := a.registry.Resolve(ch)
	if err != nil {
		return err
	}
	svc, err := service.New(sender)
	if err != nil {
		return err
	}
	logger.Debugf("已解析通知渠道 %s", ch.Key())

	if _, err := fmt.Fprintln(a.out, a.catalog.Prompt); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}
	message, err := readLine(in)
	if err != nil {
		return fmt.Errorf("read message: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := svc.Notify(message); err != nil {
		return fmt.Errorf("notify via %s: %w", ch.Key(), err)
	}
	return nil
}

// readLine 读取一行，只去掉行尾换行符；EOF 视为空行。
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
