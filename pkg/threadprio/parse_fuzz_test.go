package threadprio

import "testing"

func FuzzParsePriority(f *testing.F) {
	f.Add("min")
	f.Add("max")
	f.Add("0")
	f.Add("99")
	f.Add("100")
	f.Add("-1")
	f.Add("os:-20")
	f.Add("os:")
	f.Add("os:9999999999999999999")
	f.Add("")
	f.Add("  50  ")

	f.Fuzz(func(t *testing.T, input string) {
		p, err := ParsePriority(input)
		if err != nil {
			return
		}
		// Parsed priorities must survive formatting and re-parsing.
		back, err := ParsePriority(p.String())
		if err != nil {
			t.Fatalf("re-parse of %q failed: %v", p.String(), err)
		}
		if back != p {
			t.Fatalf("round trip changed %q: %v != %v", input, back, p)
		}
	})
}

func FuzzParsePolicy(f *testing.F) {
	f.Add("other")
	f.Add("fifo")
	f.Add("rr")
	f.Add("round-robin")
	f.Add("")
	f.Add("OTHER")

	f.Fuzz(func(t *testing.T, input string) {
		pol, err := ParsePolicy(input)
		if err != nil {
			return
		}
		back, err := ParsePolicy(pol.String())
		if err != nil || back != pol {
			t.Fatalf("round trip failed for %q: %v %v", input, back, err)
		}
	})
}
