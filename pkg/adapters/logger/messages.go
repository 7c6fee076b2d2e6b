package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting pipeline":               "パイプラインを開始します",
		"Pipeline completed successfully": "パイプラインが正常に完了しました",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",
		"Wrote %d of %d frames to %s":     "%d / %d フレームを %s に書き出しました",

		// Probe stage
		"Probing %s":                                       "%s を解析中",
		"Probed %dx%d image, %d components":                "%dx%d の画像を解析しました (%d コンポーネント)",
		"Multi-picture JPEG, using the primary image only": "マルチピクチャJPEGです。主画像のみを使用します",

		// Decode stage
		"Decoding image":                                    "画像をデコード中",
		"Decoded %dx%d image":                               "%dx%d の画像をデコードしました",
		"Decoded size %dx%d differs from probed size %dx%d": "デコード後のサイズ %dx%d が解析結果 %dx%d と異なります",

		// Convert stage
		"Converting to RGB24 (stride alignment %d)": "RGB24 に変換中 (ストライド境界 %d)",
		"Base frame ready: %dx%d, stride %d":        "ベースフレーム準備完了: %dx%d, ストライド %d",

		// Sequence stage
		"Rendering %d frames, radius %d":    "%d フレームを描画中 (半径 %d)",
		"Frame %d: center y=%d":             "フレーム %d: 中心 y=%d",
		"Encoder produced no output for %s": "%s のエンコード出力がありません",
		"Could not write %s: %s":            "%s を書き込めませんでした: %s",
		"Could not encode %s: %s":           "%s をエンコードできませんでした: %s",

		// Trajectory stage
		"Plotting trajectory of %d frames": "%d フレームの軌跡を描画中",

		// Errors
		"Failed to probe input: %s":             "入力の解析に失敗しました: %s",
		"Failed to decode input: %s":            "入力のデコードに失敗しました: %s",
		"Failed to convert image: %s":           "画像の変換に失敗しました: %s",
		"Failed to render frames: %s":           "フレームの描画に失敗しました: %s",
		"Failed to write debug output: %s":      "デバッグ出力の書き込みに失敗しました: %s",
		"Failed to create output directory: %s": "出力ディレクトリの作成に失敗しました: %s",
	})
}
