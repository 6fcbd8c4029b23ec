// 指示: miu200521358
// Package messages はユーザー向け報告に使うメッセージキーを提供する。
package messages

// メッセージキー一覧。
const (
	ReportSceneLoaded = "report.scene_loaded"
	ReportSceneSaved  = "report.scene_saved"

	ReportTransferDone = "report.transfer_done"

	ReportGroupsRemoved  = "report.groups_removed"
	ReportNoUnusedGroups = "report.no_unused_groups"

	ReportBonePlanHeader  = "report.bone_plan_header"
	ReportBonePlanEntry   = "report.bone_plan_entry"
	ReportBonePlanEmpty   = "report.bone_plan_empty"
	ReportConfirmPrompt   = "report.confirm_prompt"
	ReportCleanupAborted  = "report.cleanup_aborted"
	ReportBonesDeleted    = "report.bones_deleted"
	ReportWorkedDuplicate = "report.worked_duplicate"
)
