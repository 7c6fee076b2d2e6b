package summarizer

import (
	"fmt"
	"strings"

	"github.com/ideamans/go-l10n"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator overrides the label translation function.
func WithTranslator(fn func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// WithVersion adds the tool version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a formatter that translates labels with go-l10n.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{translate: l10n.T}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Bouncer Summary"))

	fmt.Fprintf(&b, "## %s\n\n", t("Input"))
	row := func(label, value string) {
		fmt.Fprintf(&b, "- **%s**: %s\n", t(label), value)
	}
	row("File", s.Input.Path)
	row("Dimensions", fmt.Sprintf("%dx%d", s.Input.Width, s.Input.Height))
	row("Components", fmt.Sprintf("%d", s.Input.Components))
	row("Progressive", yesNo(t, s.Input.Progressive))
	if s.Input.MultiPicture {
		row("Multi-picture", t("primary image only"))
	}

	fmt.Fprintf(&b, "\n## %s\n\n", t("Settings"))
	row("Output Directory", s.Settings.OutputDir)
	row("Stride Alignment", strideLabel(t, s.Settings.StrideAlign))
	row("Frames", fmt.Sprintf("%d", s.Settings.FrameCount))
	if s.Settings.Encoder != "" {
		row("Encoder", s.Settings.Encoder)
	}

	fmt.Fprintf(&b, "\n## %s\n\n", t("Output"))
	row("Sphere Radius", fmt.Sprintf("%d px", s.Output.Radius))
	row("Row Stride", fmt.Sprintf("%d B", s.Output.Stride))
	row("Frames Written", fmt.Sprintf("%d / %d", s.Output.Written, s.Settings.FrameCount))
	if s.Output.Skipped > 0 {
		row("Frames Skipped", fmt.Sprintf("%d", s.Output.Skipped))
	}
	row("Total Size", formatBytes(s.Output.TotalBytes))

	if len(s.Output.FailedFrames) > 0 {
		fmt.Fprintf(&b, "\n### %s\n\n", t("Failed Frames"))
		for _, name := range s.Output.FailedFrames {
			fmt.Fprintf(&b, "- `%s`\n", name)
		}
	}

	fmt.Fprintf(&b, "\n---\n\n%s %s", t("Generated at"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if f.version != "" {
		fmt.Fprintf(&b, " (bouncer %s)", f.version)
	}
	b.WriteString("\n")

	return b.String()
}

func yesNo(t func(string) string, v bool) string {
	if v {
		return t("yes")
	}
	return t("no")
}

func strideLabel(t func(string) string, align int) string {
	if align <= 1 {
		return t("packed")
	}
	return fmt.Sprintf("%d B", align)
}

// formatBytes formats a byte count with binary units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		"Bouncer Summary":    "bouncer 実行サマリー",
		"Input":              "入力",
		"File":               "ファイル",
		"Dimensions":         "サイズ",
		"Components":         "コンポーネント数",
		"Progressive":        "プログレッシブ",
		"Multi-picture":      "マルチピクチャ",
		"primary image only": "主画像のみ使用",
		"Settings":           "設定",
		"Output Directory":   "出力ディレクトリ",
		"Stride Alignment":   "ストライド境界",
		"Frames":             "フレーム数",
		"Encoder":            "エンコーダー",
		"Output":             "出力",
		"Sphere Radius":      "球の半径",
		"Row Stride":         "行ストライド",
		"Frames Written":     "書き出したフレーム",
		"Frames Skipped":     "スキップしたフレーム",
		"Total Size":         "合計サイズ",
		"Failed Frames":      "失敗したフレーム",
		"Generated at":       "生成日時",
		"yes":                "はい",
		"no":                 "いいえ",
		"packed":             "詰め込み",
	})
}
