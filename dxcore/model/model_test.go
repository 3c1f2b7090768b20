/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package model_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"dirpx.dev/dxword/dxcore/model"
	"gopkg.in/yaml.v3"
)

// entry is a minimal Model: a headword with an optional reading.
type entry struct {
	Headword string `json:"headword" yaml:"headword"`
	Reading  string `json:"reading,omitempty" yaml:"reading,omitempty"`
}

var _ model.Model = (*entry)(nil)

var errNoHeadword = errors.New("headword required")

func (e *entry) Validate() error {
	if e.Headword == "" {
		return errNoHeadword
	}
	return nil
}

func (e *entry) TypeName() string { return "entry" }

func (e *entry) IsZero() bool { return e.Headword == "" && e.Reading == "" }

func (e *entry) Redacted() string { return "entry{" + e.Headword + "}" }

func (e *entry) String() string { return "entry{" + e.Headword + ", " + e.Reading + "}" }

func (e *entry) MarshalJSON() ([]byte, error) {
	type alias entry
	return json.Marshal((*alias)(e))
}

func (e *entry) UnmarshalJSON(data []byte) error {
	type alias entry
	return json.Unmarshal(data, (*alias)(e))
}

func (e *entry) MarshalYAML() (any, error) {
	type alias entry
	return (*alias)(e), nil
}

func (e *entry) UnmarshalYAML(node *yaml.Node) error {
	type alias entry
	return node.Decode((*alias)(e))
}

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name    string
		models  []*entry
		wantErr bool
		wantIdx []string
	}{
		{"empty", nil, false, nil},
		{"all valid", []*entry{{Headword: "日"}, {Headword: "月", Reading: "つき"}}, false, nil},
		{"one invalid", []*entry{{Headword: "日"}, {Reading: "つき"}}, true, []string{"model[1]"}},
		{"two invalid", []*entry{{}, {Headword: "日"}, {Reading: "ひ"}}, true, []string{"model[0]", "model[2]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateAll(tt.models)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAll() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			for _, idx := range tt.wantIdx {
				if !strings.Contains(err.Error(), idx) {
					t.Errorf("ValidateAll() error %q does not mention %s", err, idx)
				}
			}
			if !strings.Contains(err.Error(), errNoHeadword.Error()) {
				t.Errorf("ValidateAll() error %q does not carry the validation failure", err)
			}
		})
	}
}

func TestMustValidate(t *testing.T) {
	e := &entry{Headword: "日"}
	if got := model.MustValidate(e); got != e {
		t.Errorf("MustValidate() returned a different value")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustValidate() did not panic on an invalid model")
		}
	}()
	model.MustValidate(&entry{})
}

func TestSafeString(t *testing.T) {
	e := &entry{Headword: "日", Reading: "ひ"}
	if got := model.SafeString(e, false); got != "entry{日}" {
		t.Errorf("SafeString(false) = %q", got)
	}
	if got := model.SafeString(e, true); got != "entry{日, ひ}" {
		t.Errorf("SafeString(true) = %q", got)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	in := &entry{Headword: "日本", Reading: "にほん"}
	data, err := model.ToJSON(in)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	out := &entry{}
	if err := model.FromJSON(data, out); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if *out != *in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	in := &entry{Headword: "日本", Reading: "にほん"}
	data, err := model.ToYAML(in)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	out := &entry{}
	if err := model.FromYAML(data, out); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if *out != *in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestMarshal_FailsOnInvalid(t *testing.T) {
	if _, err := model.ToJSON(&entry{}); err == nil {
		t.Errorf("ToJSON() on invalid model succeeded")
	}
	if _, err := model.ToYAML(&entry{}); err == nil {
		t.Errorf("ToYAML() on invalid model succeeded")
	}
}

func TestUnmarshal_FailsOnInvalid(t *testing.T) {
	if err := model.FromJSON([]byte(`{"reading":"ひ"}`), &entry{}); err == nil {
		t.Errorf("FromJSON() accepted a model without headword")
	}
	if err := model.FromJSON([]byte(`{broken`), &entry{}); err == nil {
		t.Errorf("FromJSON() accepted malformed JSON")
	}
	if err := model.FromYAML([]byte("reading: ひ\n"), &entry{}); err == nil {
		t.Errorf("FromYAML() accepted a model without headword")
	}
}
