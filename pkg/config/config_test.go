package config

import (
	"reflect"
	"testing"
)

func TestEnvListSplitsAndTrims(t *testing.T) {
	t.Setenv("TEST_ORIGINS", " https://a.example.com, https://b.example.com ,, ")

	got := envList("TEST_ORIGINS", "unused")
	want := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("envList = %v, want %v", got, want)
	}
}

func TestEnvListFallback(t *testing.T) {
	got := envList("TEST_ORIGINS_UNSET", "http://localhost:5173,http://localhost:4173")
	want := []string{"http://localhost:5173", "http://localhost:4173"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("envList = %v, want %v", got, want)
	}
}
