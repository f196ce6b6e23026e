package config

import "golang.org/x/xerrors"

// ShadowRuleCfg drives the shadow judgement: statements touching Column
// with a true value, or annotated with the HintKey comment, route to the
// shadow target.
type ShadowRuleCfg struct {
	Column  string   `json:"column" toml:"column" yaml:"column"`
	HintKey string   `json:"hint_key" toml:"hint_key" yaml:"hint_key"`
	Tables  []string `json:"tables" toml:"tables" yaml:"tables"`
}

const DefaultHintKey = "shadow"

func (r *ShadowRuleCfg) Validate() error {
	if r.Column == "" && r.HintKey == "" {
		return xerrors.New("shadow_rule: either column or hint_key must be set")
	}
	return nil
}

// Hint returns the comment annotation key, defaulted.
func (r *ShadowRuleCfg) Hint() string {
	if r.HintKey == "" {
		return DefaultHintKey
	}
	return r.HintKey
}

// MatchesTable reports whether the rule constrains judgement to certain
// tables and, if so, whether relation is one of them. An empty table list
// matches everything.
func (r *ShadowRuleCfg) MatchesTable(relation string) bool {
	if len(r.Tables) == 0 {
		return true
	}
	for _, t := range r.Tables {
		if t == relation {
			return true
		}
	}
	return false
}
