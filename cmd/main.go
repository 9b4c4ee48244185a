package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/urfave/cli/v2"
	"github.com/zooyer/golib/xos"
	"go.uber.org/zap"

	"github.com/zooyer/dxflite"
	"github.com/zooyer/dxflite/render"
)

const (
	defaultPrecision = 16   // 曲线离散精度，验证过: 16
	defaultSize      = 1024 // 预览图长边像素
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "dxflite",
		Usage:     "解析 DXF 图纸，输出离散后的几何报表",
		ArgsUsage: "[file.dxf]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "precision",
				Aliases: []string{"p"},
				Value:   defaultPrecision,
				Usage:   "圆、圆弧、多段线圆弧段的离散精度",
				EnvVars: []string{"DXF_PRECISION"},
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "报表路径，默认与输入同名的 .csv",
			},
			&cli.StringFlag{
				Name:  "png",
				Usage: "同时输出 PNG 预览图",
			},
			&cli.IntFlag{
				Name:  "size",
				Value: defaultSize,
				Usage: "预览图长边像素",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "输出调试日志",
				EnvVars: []string{"DXF_DEBUG"},
			},
			&cli.BoolFlag{
				Name:  "no-pause",
				Usage: "结束时不等待按键",
			},
		},
		Action: run,
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(c *cli.Context) (err error) {
	if !c.Bool("no-pause") {
		defer xos.PauseExit()
	}

	l, err := newLogger(c.Bool("debug"))
	if err != nil {
		return err
	}
	defer l.Sync()
	zap.ReplaceGlobals(l)
	dxflite.SetLogger(l)

	opts := render.DefaultOptions()
	opts.Size = c.Int("size")
	opts.Precision = c.Int("precision")
	if err = opts.Validate(); err != nil {
		return cli.Exit(fmt.Sprintf("--size %d 过小", opts.Size), 1)
	}

	// 没有参数时弹出文件选择框，出错也用对话框提示
	filename := c.Args().First()
	if filename == "" {
		if filename, err = selectFile(); err != nil {
			return err
		}
		defer func() {
			if err != nil {
				_ = zenity.Error(err.Error(), zenity.Title("dxflite"))
			}
		}()
	}

	doc, err := dxflite.Open(filename)
	if err != nil {
		l.Error("open dxf", zap.String("path", filename), zap.Error(err))
		return err
	}
	l.Info("loaded",
		zap.String("path", filename),
		zap.Int("layers", len(doc.Layers)),
		zap.Int("entities", doc.Len()),
	)

	var output = c.String("out")
	if output == "" {
		output = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".csv"
	}

	summary, err := writeReport(output, doc, opts.Precision)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Println("写入文件:", output)
	fmt.Printf("共%d图层, 共%d实体, 共%d点\n", summary.Layers, summary.Entities, summary.Points)

	if preview := c.String("png"); preview != "" {
		if err = render.SavePNG(doc, preview, opts); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
		fmt.Println("写入预览:", preview)
	}

	return nil
}

func selectFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("请选择 DXF 文件"),
		zenity.FileFilters{
			{Name: "DXF 图纸", Patterns: []string{"*.dxf", "*.DXF"}},
		},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", cli.Exit("未选择文件", 1)
	}
	return filename, err
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "错误:", err)
		os.Exit(1)
	}
}
