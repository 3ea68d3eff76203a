package model

import "encoding/json"

// CompanyUser 遠端名單的單筆紀錄
// 來源系統的id欄位名稱不固定，id / userId / _id 都有可能
type CompanyUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Country string `json:"country"`
	Status  string `json:"status"`
}

// idToString id欄位字串或數字都有可能，統一轉成字串
func idToString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func (u *CompanyUser) UnmarshalJSON(data []byte) error {
	type alias struct {
		ID      json.RawMessage `json:"id"`
		UserID  json.RawMessage `json:"userId"`
		MongoID string          `json:"_id"`
		Name    string          `json:"name"`
		Email   string          `json:"email"`
		Phone   string          `json:"phone"`
		Address string          `json:"address"`
		Country string          `json:"country"`
		Status  string          `json:"status"`
	}
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	switch {
	case idToString(a.ID) != "":
		u.ID = idToString(a.ID)
	case idToString(a.UserID) != "":
		u.ID = idToString(a.UserID)
	default:
		u.ID = a.MongoID
	}
	u.Name = a.Name
	u.Email = a.Email
	u.Phone = a.Phone
	u.Address = a.Address
	u.Country = a.Country
	u.Status = a.Status
	return nil
}
