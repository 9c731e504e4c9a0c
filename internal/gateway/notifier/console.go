package notifier

import (
	"fmt"
	"io"
	"os"
)

// 中文说明：
// 控制台桩实现：不做真实投递，只输出一行 "<label>: <message>"。

type consoleLine struct {
	label string
	out   io.Writer
}

func newConsoleLine(out io.Writer, label string) consoleLine {
	if out == nil {
		out = os.Stdout
	}
	return consoleLine{label: label, out: out}
}

func (c consoleLine) write(message string) error {
	_, err := fmt.Fprintf(c.out, "%s: %s\n", c.label, message)
	return err
}

type EmailSender struct{ line consoleLine }

func NewEmailSender(out io.Writer, label string) *EmailSender {
	return &EmailSender{line: newConsoleLine(out, label)}
}

// Send 输出 Email 通知行
func (s *EmailSender) Send(message string) error { return s.line.write(message) }

type SMSSender struct{ line consoleLine }

func NewSMSSender(out io.Writer, label string) *SMSSender {
	return &SMSSender{line: newConsoleLine(out, label)}
}

func (s *SMSSender) Send(message string) error { return s.line.write(message) }

type TelegramSender struct{ line consoleLine }

func NewTelegramSender(out io.Writer, label string) *TelegramSender {
	return &TelegramSender{line: newConsoleLine(out, label)}
}

func (s *TelegramSender) Send(message string) error { return s.line.write(message) }

var (
	_ Sender = (*EmailSender)(nil)
	_ Sender = (*SMSSender)(nil)
	_ Sender = (*TelegramSender)(nil)
)
