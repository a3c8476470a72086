package questions

import "testing"

func TestDefault_BankIsWellFormed(t *testing.T) {
	bank := Default()
	if len(bank) == 0 {
		t.Fatal("question bank should not be empty")
	}
	for i, q := range bank {
		if q.Question == "" {
			t.Errorf("question %d has empty prompt", i)
		}
		if len(q.Alternatives) < 2 {
			t.Errorf("question %d has %d alternatives, want at least 2", i, len(q.Alternatives))
		}
		if q.Correct < 0 || q.Correct >= len(q.Alternatives) {
			t.Errorf("question %d correct index %d out of range [0,%d)", i, q.Correct, len(q.Alternatives))
		}
	}
}
