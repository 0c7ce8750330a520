package speech

import "mindshift-be/internal/entity"

// Catalog enumerates the synthesis voices available to the app. Read-only.
type Catalog interface {
	Voices() []entity.VoiceProfile
}

// StaticCatalog is the built-in voice list used when the platform does not
// expose its own enumeration.
type StaticCatalog struct {
	voices []entity.VoiceProfile
}

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{
		voices: []entity.VoiceProfile{
			{Name: "Aria", Gender: entity.VoiceGenderFemale},
			{Name: "Luna", Gender: entity.VoiceGenderFemale},
			{Name: "Atlas", Gender: entity.VoiceGenderMale},
			{Name: "Orion", Gender: entity.VoiceGenderMale},
			{Name: "Pip", Gender: entity.VoiceGenderChild},
		},
	}
}

func (c *StaticCatalog) Voices() []entity.VoiceProfile {
	out := make([]entity.VoiceProfile, len(c.voices))
	copy(out, c.voices)
	return out
}

// FindVoice returns the catalog entry with the given name, or false.
func FindVoice(catalog Catalog, name string) (entity.VoiceProfile, bool) {
	for _, v := range catalog.Voices() {
		if v.Name == name {
			return v, true
		}
	}
	return entity.VoiceProfile{}, false
}

// DefaultVoice is used when the user has no stored preference.
func DefaultVoice(catalog Catalog) entity.VoiceProfile {
	voices := catalog.Voices()
	if len(voices) == 0 {
		return entity.VoiceProfile{Name: "Aria", Gender: entity.VoiceGenderFemale}
	}
	return voices[0]
}
