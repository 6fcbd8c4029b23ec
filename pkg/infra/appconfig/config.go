// 指示: miu200521358
// Package appconfig はツール設定ファイル(YAML)の読み込みを提供する。
package appconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config はツール設定を表す。
type Config struct {
	// Language は報告文の言語(BCP 47)を表す。空なら既定言語。
	Language string `yaml:"language"`
	// DuplicateArmature はボーン削除時にアーマチュアを複製するかの既定値を表す。
	DuplicateArmature *bool `yaml:"duplicate_armature"`
	// AssumeYes が真なら確認プロンプトを省略する。
	AssumeYes bool `yaml:"assume_yes"`
}

// Default は既定設定を返す。
func Default() Config {
	return Config{}
}

// DuplicateArmatureOrDefault は複製既定値を返す。未指定は真。
func (c Config) DuplicateArmatureOrDefault() bool {
	if c.DuplicateArmature == nil {
		return true
	}
	return *c.DuplicateArmature
}

// Load は設定ファイルを読み込む。ファイルが無い場合は既定設定を返す。
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("設定YAMLの解析に失敗しました: %w", err)
	}
	return config, nil
}
