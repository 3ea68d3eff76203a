package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/RoyceAzure/lab/vendorportal/internal/model"
)

// WriteCSV 標準CSV引用規則，含逗號/引號的欄位會被正確跳脫
func WriteCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func AdminUsersCSV(admins []model.AdminUser) ([]byte, error) {
	header := []string{"id", "name", "email", "role", "lastLogin", "status"}
	rows := make([][]string, 0, len(admins))
	for _, a := range admins {
		rows = append(rows, []string{
			strconv.Itoa(a.ID), a.Name, a.Email, a.Role, a.LastLogin, a.Status,
		})
	}
	return WriteCSV(header, rows)
}

func UsersCSV(users []model.User) ([]byte, error) {
	header := []string{"id", "name", "email", "phone", "address", "country", "status"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.Itoa(u.ID), u.Name, u.Email, u.Phone, u.Address, u.Country, u.Status,
		})
	}
	return WriteCSV(header, rows)
}
