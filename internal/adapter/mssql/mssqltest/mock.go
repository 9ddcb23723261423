// Package mssqltest предоставляет тестовые утилиты для пакета mssql:
// мок-реализацию интерфейсов и вспомогательные конструкторы.
package mssqltest

import (
	"context"

	"github.com/Kargones/ufe/internal/adapter/mssql"
)

// Compile-time проверки реализации интерфейсов
var (
	_ mssql.Client             = (*MockMSSQLClient)(nil)
	_ mssql.DatabaseConnector  = (*MockMSSQLClient)(nil)
	_ mssql.ServerInfoProvider = (*MockMSSQLClient)(nil)
)

// MockMSSQLClient — мок-реализация mssql.Client для тестирования.
// Использует функциональные поля для гибкой настройки поведения в тестах.
type MockMSSQLClient struct {
	ServerName     string
	ConnectFunc    func(ctx context.Context) error
	CloseFunc      func() error
	PingFunc       func(ctx context.Context) error
	ServerInfoFunc func(ctx context.Context) (*mssql.ServerInfo, error)

	// Closed — был ли вызван Close.
	Closed bool
}

// Server возвращает ServerName или "db.test".
func (m *MockMSSQLClient) Server() string {
	if m.ServerName != "" {
		return m.ServerName
	}
	return "db.test"
}

// Connect при отсутствии пользовательской функции возвращает nil.
func (m *MockMSSQLClient) Connect(ctx context.Context) error {
	if m.ConnectFunc != nil {
		return m.ConnectFunc(ctx)
	}
	return nil
}

// Close отмечает вызов и при отсутствии пользовательской функции возвращает nil.
func (m *MockMSSQLClient) Close() error {
	m.Closed = true
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Ping при отсутствии пользовательской функции возвращает nil.
func (m *MockMSSQLClient) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// ServerInfo при отсутствии пользовательской функции возвращает реалистичные данные.
func (m *MockMSSQLClient) ServerInfo(ctx context.Context) (*mssql.ServerInfo, error) {
	if m.ServerInfoFunc != nil {
		return m.ServerInfoFunc(ctx)
	}
	return &mssql.ServerInfo{
		Version:  "Microsoft SQL Server 2022 (RTM) - 16.0.1000.6 (X64)",
		Database: "master",
	}, nil
}

// NewMockMSSQLClient создаёт MockMSSQLClient с дефолтными значениями.
func NewMockMSSQLClient() *MockMSSQLClient {
	return &MockMSSQLClient{}
}

// NewMockMSSQLClientWithConnectError создаёт мок, у которого Connect возвращает
// *mssql.ConnectError с причиной err.
func NewMockMSSQLClientWithConnectError(err error) *MockMSSQLClient {
	m := &MockMSSQLClient{}
	m.ConnectFunc = func(_ context.Context) error {
		return &mssql.ConnectError{Server: m.Server(), Err: err}
	}
	return m
}
