package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestRun_InvalidSize(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sample.csv")

	for _, size := range []string{"0", "-8", "32"} {
		app := newApp()
		app.ExitErrHandler = func(*cli.Context, error) {}

		err := app.Run([]string{"dxflite", "--no-pause", "--size", size, "-o", out, "../testdata/sample.dxf"})

		var exit cli.ExitCoder
		if !errors.As(err, &exit) || exit.ExitCode() != 1 {
			t.Errorf("size=%s: 期望退出码 1, 得到 %v", size, err)
		}
	}

	// 参数检查在读文件之前，不应该生成报表
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("size 无效时不应写出报表: %v", err)
	}
}
