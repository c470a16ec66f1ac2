// Package main provides localization for the skinview CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Render avatars and previews from Minecraft skin textures": "Minecraftスキンのテクスチャからアバターとプレビューを描画",

		// Commands
		"Render a square face avatar":                     "正方形の顔アバターを描画",
		"Render a full body preview":                      "全身プレビューを描画",
		"Render a cape preview":                           "マントのプレビューを描画",
		"Draw the region map over a texture":              "テクスチャに領域マップを重ねて描画",
		"Render every job listed in a configuration file": "設定ファイルに記載された全ジョブを描画",
		"Show version information":                        "バージョン情報を表示",
		"skinview version %s":                             "skinview バージョン %s",

		// Render flags
		"Output image path (required)":                      "出力画像パス（必須）",
		"Read the input file as base64 text":                "入力ファイルをbase64テキストとして読み込む",
		"Avatar edge length in pixels (default: 128)":       "アバターの一辺のピクセル数（デフォルト: 128）",
		"Preview height in pixels (default: 256)":           "プレビューの高さ（ピクセル、デフォルト: 256）",
		"Head face to show (front, left, right, back)":      "表示する頭の面（front, left, right, back）",
		"Poses to show (both, front, back)":                 "表示するポーズ（both, front, back）",
		"Arm model (steve, alex)":                           "腕のモデル（steve, alex）",
		"Gap between front and back poses in texture units": "前面と背面のポーズ間の隙間（テクスチャ単位）",
		"Screen pixels per texture unit (default: 8)":       "テクスチャ1単位あたりのピクセル数（デフォルト: 8）",
		"Background color (hex, e.g., #282828)":             "背景色（16進数、例: #282828）",

		// Output flags
		"Output format (png, jpeg, gif, bmp, tiff)": "出力形式（png, jpeg, gif, bmp, tiff）",
		"JPEG quality (1-100)":                      "JPEG品質（1-100）",
		"Configuration file (YAML)":                 "設定ファイル（YAML）",

		// Batch flags
		"Number of parallel workers (0 = CPU count)":         "並列ワーカー数（0 = CPU数）",
		"Output execution summary to file (Markdown format)": "実行サマリーをファイルに出力（Markdown形式）",

		// Debug flags
		"Enable debug output":        "デバッグ出力を有効化",
		"Directory for debug output": "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Error messages
		"Exactly one texture argument is required": "テクスチャ引数を1つだけ指定してください",
		"No jobs in configuration":                 "設定にジョブがありません",
		"Some jobs failed":                         "一部のジョブが失敗しました",
	})
}
