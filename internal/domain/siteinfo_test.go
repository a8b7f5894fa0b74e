package domain

import "testing"

func TestMergeSiteInfoStoredWins(t *testing.T) {
	def := DefaultSiteInfo()
	stored := SiteInfo{SiteName: "Loja do Zé", HeroPhone: "5585900000000"}

	got := MergeSiteInfo(def, stored)
	if got.SiteName != "Loja do Zé" {
		t.Fatalf("stored field overwritten: %q", got.SiteName)
	}
	if got.HeroPhone != "5585900000000" {
		t.Fatalf("stored phone overwritten: %q", got.HeroPhone)
	}
	if got.HeroLocation != def.HeroLocation {
		t.Fatalf("empty field not defaulted: %q", got.HeroLocation)
	}
}

func TestMergeSiteInfoEmptyStoredYieldsDefaults(t *testing.T) {
	def := DefaultSiteInfo()
	if got := MergeSiteInfo(def, SiteInfo{}); got != def {
		t.Fatalf("got %+v", got)
	}
}

func TestSiteInfoUpdateEmpty(t *testing.T) {
	if !(SiteInfoUpdate{}).Empty() {
		t.Fatal("zero update should be empty")
	}
	name := "x"
	if (SiteInfoUpdate{SiteName: &name}).Empty() {
		t.Fatal("update with a field should not be empty")
	}
}

func TestProductUpdateEmpty(t *testing.T) {
	if !(ProductUpdate{}).Empty() {
		t.Fatal("zero update should be empty")
	}
	price := 1.0
	if (ProductUpdate{Price: &price}).Empty() {
		t.Fatal("update with a field should not be empty")
	}
}
