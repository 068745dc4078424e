// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Denisov

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestOwnerIDCtxKey(t *testing.T) {
	if OwnerIDCtxKey.String() != "ownerID" {
		t.Errorf("expected 'ownerID', got '%s'", OwnerIDCtxKey.String())
	}
}

func TestGetOwnerIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), OwnerIDCtxKey, "0191b3a9-1111-7000-8000-00000000000f")

	ownerID, ok := GetOwnerIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if ownerID != "0191b3a9-1111-7000-8000-00000000000f" {
		t.Errorf("unexpected ownerID: %s", ownerID)
	}
}

func TestGetOwnerIDFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	ownerID, ok := GetOwnerIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if ownerID != "" {
		t.Errorf("expected empty ownerID, got %s", ownerID)
	}
}

func TestGetOwnerIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OwnerIDCtxKey, int64(42))

	ownerID, ok := GetOwnerIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
	if ownerID != "" {
		t.Errorf("expected empty ownerID, got %s", ownerID)
	}
}
