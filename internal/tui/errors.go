// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-study-sync/internal/adapter"
	"github.com/MKhiriev/go-study-sync/internal/service"
)

var errDeviceNotRegistered = errors.New("устройство не зарегистрировано")

// humanizeSyncError turns a failure of the engine or the device service into
// a message for the console.
func humanizeSyncError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrNotLoggedIn):
		return "Не выполнен вход: задайте токен (ADAPTER_TOKEN)"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Токен недействителен или истёк"
	case errors.Is(err, service.ErrUnauthorizedAccessToDifferentUserData):
		return "Токен выдан другому пользователю"
	case errors.Is(err, service.ErrSyncAbandoned):
		return "Синхронизация продолжается в фоне"
	case errors.Is(err, adapter.ErrMalformedResponse):
		return "Сервер вернул некорректный ответ"
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
