// 指示: miu200521358
// Package mscene はシーン入出力の契約を提供する。
package mscene

import "github.com/miu200521358/mu_outfit_helper/pkg/domain/model"

// SaveOptions は保存時のオプションを表す。
type SaveOptions struct {
	Indent bool
}

// ISceneReader はシーン読み込みの契約を表す。
type ISceneReader interface {
	// CanLoad はパスが読み込み対象形式か判定する。
	CanLoad(path string) bool
	// InferName はパスから表示名を推定する。
	InferName(path string) string
	// Load はシーンを読み込む。
	Load(path string) (*model.Scene, error)
}

// ISceneWriter はシーン書き込みの契約を表す。
type ISceneWriter interface {
	// Save はシーンを保存する。
	Save(path string, scene *model.Scene, options SaveOptions) error
}
