// 指示: miu200521358
package messages

import "testing"

func TestReportKeysAreDefined(t *testing.T) {
	keys := []string{
		ReportSceneLoaded,
		ReportSceneSaved,
		ReportTransferDone,
		ReportGroupsRemoved,
		ReportNoUnusedGroups,
		ReportBonePlanHeader,
		ReportBonePlanEntry,
		ReportBonePlanEmpty,
		ReportConfirmPrompt,
		ReportCleanupAborted,
		ReportBonesDeleted,
		ReportWorkedDuplicate,
	}

	seen := map[string]struct{}{}
	for _, key := range keys {
		if key == "" {
			t.Fatalf("key should not be empty")
		}
		if _, exists := seen[key]; exists {
			t.Fatalf("key should be unique: %s", key)
		}
		seen[key] = struct{}{}
	}
}
