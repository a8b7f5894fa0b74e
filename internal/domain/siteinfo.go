package domain

// SiteInfo is the singleton document holding the storefront display strings.
// It lives at siteInfo/main and is merge-updated field by field.
type SiteInfo struct {
	SiteName          string `bson:"siteName" json:"siteName"`
	HeroTitle1        string `bson:"heroTitle1" json:"heroTitle1"`
	HeroTitle2        string `bson:"heroTitle2" json:"heroTitle2"`
	HeroLocation      string `bson:"heroLocation" json:"heroLocation"`
	HeroSlogan        string `bson:"heroSlogan" json:"heroSlogan"`
	HeroPhone         string `bson:"heroPhone" json:"heroPhone"`
	HeroPhoneDisplay  string `bson:"heroPhoneDisplay" json:"heroPhoneDisplay"`
	HeroLocation2     string `bson:"heroLocation2" json:"heroLocation2"`
	HeroPhone2        string `bson:"heroPhone2" json:"heroPhone2"`
	HeroPhoneDisplay2 string `bson:"heroPhoneDisplay2" json:"heroPhoneDisplay2"`
}

// SiteInfoUpdate holds the admin-editable fields; nil means untouched.
type SiteInfoUpdate struct {
	SiteName          *string `json:"siteName,omitempty"`
	HeroTitle1        *string `json:"heroTitle1,omitempty"`
	HeroTitle2        *string `json:"heroTitle2,omitempty"`
	HeroLocation      *string `json:"heroLocation,omitempty"`
	HeroSlogan        *string `json:"heroSlogan,omitempty"`
	HeroPhone         *string `json:"heroPhone,omitempty"`
	HeroPhoneDisplay  *string `json:"heroPhoneDisplay,omitempty"`
	HeroLocation2     *string `json:"heroLocation2,omitempty"`
	HeroPhone2        *string `json:"heroPhone2,omitempty"`
	HeroPhoneDisplay2 *string `json:"heroPhoneDisplay2,omitempty"`
}

// Empty reports whether the update would change nothing.
func (u SiteInfoUpdate) Empty() bool {
	return u.SiteName == nil && u.HeroTitle1 == nil && u.HeroTitle2 == nil &&
		u.HeroLocation == nil && u.HeroSlogan == nil && u.HeroPhone == nil &&
		u.HeroPhoneDisplay == nil && u.HeroLocation2 == nil && u.HeroPhone2 == nil &&
		u.HeroPhoneDisplay2 == nil
}

// MergeSiteInfo fills the empty fields of stored with the default values, the
// same "defaults under, stored on top" merge the storefront renders with.
func MergeSiteInfo(def, stored SiteInfo) SiteInfo {
	out := stored
	if out.SiteName == "" {
		out.SiteName = def.SiteName
	}
	if out.HeroTitle1 == "" {
		out.HeroTitle1 = def.HeroTitle1
	}
	if out.HeroTitle2 == "" {
		out.HeroTitle2 = def.HeroTitle2
	}
	if out.HeroLocation == "" {
		out.HeroLocation = def.HeroLocation
	}
	if out.HeroSlogan == "" {
		out.HeroSlogan = def.HeroSlogan
	}
	if out.HeroPhone == "" {
		out.HeroPhone = def.HeroPhone
	}
	if out.HeroPhoneDisplay == "" {
		out.HeroPhoneDisplay = def.HeroPhoneDisplay
	}
	if out.HeroLocation2 == "" {
		out.HeroLocation2 = def.HeroLocation2
	}
	if out.HeroPhone2 == "" {
		out.HeroPhone2 = def.HeroPhone2
	}
	if out.HeroPhoneDisplay2 == "" {
		out.HeroPhoneDisplay2 = def.HeroPhoneDisplay2
	}
	return out
}
