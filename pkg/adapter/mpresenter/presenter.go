// 指示: miu200521358
// Package mpresenter はメッセージキーを言語別の報告文へ整形する。
package mpresenter

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/miu200521358/mu_outfit_helper/pkg/adapter/mpresenter/messages"
)

// supportedTags は報告文の対応言語を表す。先頭が既定言語。
var supportedTags = []language.Tag{
	language.Japanese,
	language.English,
}

var matcher = language.NewMatcher(supportedTags)

func init() {
	registerJapanese()
	registerEnglish()
}

// registerJapanese は日本語カタログを登録する。
func registerJapanese() {
	tag := language.Japanese
	message.SetString(tag, messages.ReportSceneLoaded, "シーン読み込み完了: %s")
	message.SetString(tag, messages.ReportSceneSaved, "シーン保存完了: %s")
	message.SetString(tag, messages.ReportTransferDone, "頂点グループ転送完了: %s → %s (グループ%d件 / 共有頂点%d個 / アーマチュア %s)")
	message.SetString(tag, messages.ReportGroupsRemoved, "ウェイト未使用の頂点グループを%d件削除しました: %s")
	message.SetString(tag, messages.ReportNoUnusedGroups, "ウェイト未使用の頂点グループはありません: %s")
	message.SetString(tag, messages.ReportBonePlanHeader, "アーマチュア %s から未使用ボーン%d件を削除します")
	message.SetString(tag, messages.ReportBonePlanEntry, "  削除対象: %s")
	message.SetString(tag, messages.ReportBonePlanEmpty, "削除対象の未使用ボーンはありません: %s")
	message.SetString(tag, messages.ReportConfirmPrompt, "続行しますか? (y/N): ")
	message.SetString(tag, messages.ReportCleanupAborted, "ボーン削除を中止しました。変更はありません")
	message.SetString(tag, messages.ReportBonesDeleted, "未使用ボーンを%d件削除しました: %s")
	message.SetString(tag, messages.ReportWorkedDuplicate, "元のアーマチュアは保持し、複製 %s へ適用しました")
}

// registerEnglish は英語カタログを登録する。
func registerEnglish() {
	tag := language.English
	message.SetString(tag, messages.ReportSceneLoaded, "scene loaded: %s")
	message.SetString(tag, messages.ReportSceneSaved, "scene saved: %s")
	message.SetString(tag, messages.ReportTransferDone, "transferred vertex groups: %s → %s (%d groups / %d shared vertices / armature %s)")
	message.SetString(tag, messages.ReportGroupsRemoved, "removed %d zero-weight vertex groups: %s")
	message.SetString(tag, messages.ReportNoUnusedGroups, "no zero-weight vertex groups found: %s")
	message.SetString(tag, messages.ReportBonePlanHeader, "about to delete %[2]d unused bones from armature %[1]s")
	message.SetString(tag, messages.ReportBonePlanEntry, "  delete: %s")
	message.SetString(tag, messages.ReportBonePlanEmpty, "no unused bones to delete: %s")
	message.SetString(tag, messages.ReportConfirmPrompt, "proceed? (y/N): ")
	message.SetString(tag, messages.ReportCleanupAborted, "bone cleanup aborted, nothing changed")
	message.SetString(tag, messages.ReportBonesDeleted, "deleted %d unused bones: %s")
	message.SetString(tag, messages.ReportWorkedDuplicate, "original armature kept, applied to duplicate %s")
}

// Presenter は指定言語で報告文を整形する。
type Presenter struct {
	printer *message.Printer
}

// New は言語指定(BCP 47)のプレゼンターを生成する。未対応言語は既定言語へ寄せる。
func New(lang string) *Presenter {
	tag, _ := language.MatchStrings(matcher, lang)
	return &Presenter{printer: message.NewPrinter(tag)}
}

// Sprintf はメッセージキーを整形した報告文を返す。
func (p *Presenter) Sprintf(key string, args ...any) string {
	return p.printer.Sprintf(key, args...)
}
