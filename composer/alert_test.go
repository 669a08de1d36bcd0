package composer_test

import (
	"testing"
	"time"

	"github.com/nbmusic/nbm/composer"
)

func collectAlerts(m *composer.Model) (ret []composer.Alert) {
	for a := range m.Alerts().Iterate() {
		ret = append(ret, a)
	}
	return
}

func TestAlertsPriorityOrder(t *testing.T) {
	m := composer.NewModel(nil)
	m.Alerts().Add("first info", composer.Info)
	m.Alerts().Add("an error", composer.Error)
	m.Alerts().Add("second info", composer.Info)
	m.Alerts().Add("a warning", composer.Warning)
	var got []string
	for _, a := range collectAlerts(m) {
		got = append(got, a.Message)
	}
	want := []string{"an error", "a warning", "first info", "second info"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestNamedAlertsReplace(t *testing.T) {
	m := composer.NewModel(nil)
	m.Alerts().AddNamed("Save", "failed", composer.Error)
	m.Alerts().AddNamed("Save", "saved", composer.Info)
	alerts := collectAlerts(m)
	if len(alerts) != 1 || alerts[0].Message != "saved" {
		t.Fatalf("expected a single replaced alert, got %v", alerts)
	}
}

func TestAlertsExpire(t *testing.T) {
	m := composer.NewModel(nil)
	m.Alerts().Push(composer.Alert{Message: "hello", Priority: composer.Info, Duration: time.Second})
	if !m.Alerts().Update(500 * time.Millisecond) {
		t.Fatal("alert disappeared too early")
	}
	if a := collectAlerts(m); a[0].FadeLevel != 1 {
		t.Fatalf("expected the alert to be fully visible, got fade level %v", a[0].FadeLevel)
	}
	m.Alerts().Update(600 * time.Millisecond)
	if m.Alerts().Update(time.Second) {
		t.Fatal("alert should have faded out")
	}
	if a := collectAlerts(m); len(a) != 0 {
		t.Fatalf("expected no alerts, got %v", a)
	}
}
