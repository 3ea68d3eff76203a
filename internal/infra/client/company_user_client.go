package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/vendorportal/internal/model"
)

var ErrUnexpectedShape = errors.New("unexpected response shape")

type ICompanyUserClient interface {
	// FetchUserList 一次抓整份名單，不送任何分頁參數
	FetchUserList(ctx context.Context) ([]model.CompanyUser, error)
}

// CompanyUserClient 呼叫第三方名單endpoint
// 來源系統沒有timeout，這裡補上避免卡死
type CompanyUserClient struct {
	httpClient *http.Client
	listURL    string
}

func NewCompanyUserClient(listURL string, timeout time.Duration) *CompanyUserClient {
	return &CompanyUserClient{
		httpClient: &http.Client{Timeout: timeout},
		listURL:    listURL,
	}
}

func (c *CompanyUserClient) FetchUserList(ctx context.Context) ([]model.CompanyUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.listURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch user list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch user list: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return DecodeUserList(body)
}

// DecodeUserList 回應有可能是陣列，也可能被包在 data / users / result 底下
// 逐一探測，全部不合時回傳空清單與ErrUnexpectedShape
func DecodeUserList(body []byte) ([]model.CompanyUser, error) {
	var users []model.CompanyUser
	if err := json.Unmarshal(body, &users); err == nil {
		return users, nil
	}

	var wrapper struct {
		Data   json.RawMessage `json:"data"`
		Users  json.RawMessage `json:"users"`
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return []model.CompanyUser{}, ErrUnexpectedShape
	}

	for _, raw := range [][]byte{wrapper.Data, wrapper.Users, wrapper.Result} {
		if raw == nil {
			continue
		}
		if err := json.Unmarshal(raw, &users); err == nil {
			return users, nil
		}
	}
	return []model.CompanyUser{}, ErrUnexpectedShape
}

var _ ICompanyUserClient = (*CompanyUserClient)(nil)
