// File: internal/service/access.go
package service

import "timeclock/internal/model"

// 工時紀錄的存取規則：本人或管理員。讀寫同一條件，
// 且一律套用在單筆紀錄上；列表查詢需在 store 層先以 owner 過濾。

// CanReadEntry 判斷 claims 持有者可否讀取該筆紀錄
func CanReadEntry(claims *CustomClaims, entry *model.TimeEntry) bool {
	return claims.IsAdmin() || claims.UserID == entry.UserID
}

// CanWriteEntry 判斷 claims 持有者可否修改或刪除該筆紀錄
func CanWriteEntry(claims *CustomClaims, entry *model.TimeEntry) bool {
	return claims.IsAdmin() || claims.UserID == entry.UserID
}
