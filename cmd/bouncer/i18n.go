// Package main provides localization for the bouncer CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Render a bouncing sphere over a JPEG image as a sequence of raw frames.": "JPEG画像の上でバウンドする球を描画し、RAWフレーム列として書き出します。",

		// Run command
		"Render the bouncing sphere over a JPEG image.": "JPEG画像の上にバウンドする球を描画",
		"Summary saved to %s":                           "サマリーを %s に保存しました",
		"Failed to write summary: %s":                   "サマリーの書き込みに失敗しました: %s",

		// Version command
		"Show version information.": "バージョン情報を表示",
		"bouncer version %s":        "bouncer バージョン %s",

		// Errors
		"Error: %s": "エラー: %s",
	})
}
