// Package mssql предоставляет клиент Microsoft SQL Server для проверки подключения.
// Пакет разделён по принципу ISP на сфокусированные интерфейсы:
// DatabaseConnector и ServerInfoProvider. Композитный интерфейс Client объединяет их.
package mssql

import (
	"context"
	"time"
)

// DefaultTimeout — таймаут подключения, если Options.Timeout не задан.
const DefaultTimeout = 30 * time.Second

// Options содержит параметры подключения.
type Options struct {
	// DSN — строка подключения go-mssqldb: URL (sqlserver://...) или ADO (server=...;).
	// Содержит пароль и не должна попадать в логи и сообщения.
	DSN string
	// Timeout — таймаут установки соединения.
	Timeout time.Duration
}

// ServerInfo описывает сервер, к которому установлено соединение.
type ServerInfo struct {
	// Version — первая строка @@VERSION.
	Version string
	// Database — текущая база данных подключения.
	Database string
}

// DatabaseConnector предоставляет операции для подключения к серверу MSSQL.
type DatabaseConnector interface {
	// Connect устанавливает соединение с сервером MSSQL.
	Connect(ctx context.Context) error
	// Close закрывает соединение с сервером.
	Close() error
	// Ping проверяет доступность сервера.
	Ping(ctx context.Context) error
}

// ServerInfoProvider предоставляет сведения о сервере.
type ServerInfoProvider interface {
	// ServerInfo возвращает версию сервера и имя текущей базы данных.
	ServerInfo(ctx context.Context) (*ServerInfo, error)
}

// Client — композитный интерфейс, объединяющий все операции MSSQL.
type Client interface {
	DatabaseConnector
	ServerInfoProvider
	// Server возвращает имя сервера из строки подключения, без учётных данных.
	Server() string
}
