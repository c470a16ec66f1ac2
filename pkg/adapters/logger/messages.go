package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Rendered %s %s (%dx%d) to %s":             "%s %s (%dx%d) を %s に描画しました",
		"Rendering %d jobs with %d workers":        "%d 件のジョブを %d ワーカーで描画中",
		"Batch completed: %d succeeded, %d failed": "バッチ完了: 成功 %d 件, 失敗 %d 件",
		"Batch interrupted":                        "バッチが中断されました",
		"Output saved to %s":                       "出力を %s に保存しました",
		"Summary saved to %s":                      "サマリーを %s に保存しました",
		"Interrupted, shutting down...":            "中断されました。シャットダウン中...",

		// Avatar stage
		"Rendered %s avatar at %dpx (ratio %d, %d hat pixels keyed)": "%s アバターを %dpx で描画しました (倍率 %d, 帽子レイヤー %d ピクセルを透過)",

		// Preview stage
		"Rendered %s preview (%s, %s layer) at %dx%d from %dx%d canvas": "%s プレビューを描画しました (%s, %s レイヤー) %dx%d, キャンバス %dx%d",

		// Cape stage
		"Rendered cape from %dx%d texture": "%dx%d テクスチャからマントを描画しました",

		// Region map stage
		"Region map drawn: %d parts at %dx scale": "領域マップを描画しました: %d パーツ, %d 倍",

		// Errors and warnings
		"Failed to read %s: %s":           "%s の読み込みに失敗しました: %s",
		"Failed to render %s: %s":         "%s の描画に失敗しました: %s",
		"Failed to write output: %s":      "出力の書き込みに失敗しました: %s",
		"Failed to save debug output: %s": "デバッグ出力の保存に失敗しました: %s",
		"Failed to write summary: %s":     "サマリーの書き込みに失敗しました: %s",
	})
}
