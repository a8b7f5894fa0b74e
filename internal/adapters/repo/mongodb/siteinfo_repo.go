package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mrbebidas/distribuidora/internal/domain"
)

const siteInfoDocID = "main"

type SiteInfoRepo struct {
	col *mongo.Collection
}

func NewSiteInfoRepo(db *mongo.Database) *SiteInfoRepo {
	return &SiteInfoRepo{col: db.Collection("siteInfo")}
}

func (r *SiteInfoRepo) Get(ctx context.Context) (*domain.SiteInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	var info domain.SiteInfo
	err := r.col.FindOne(ctx, bson.M{"_id": siteInfoDocID}).Decode(&info)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// EnsureDefaults creates the document whole when absent; when present it only
// $sets the default fields the stored document is missing, so an admin-edited
// value is never clobbered and newly introduced fields get backfilled.
func (r *SiteInfoRepo) EnsureDefaults(ctx context.Context, defaults domain.SiteInfo) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	var stored bson.M
	err := r.col.FindOne(ctx, bson.M{"_id": siteInfoDocID}).Decode(&stored)
	if err == mongo.ErrNoDocuments {
		doc, err := toBsonMap(defaults)
		if err != nil {
			return err
		}
		doc["_id"] = siteInfoDocID
		_, err = r.col.InsertOne(ctx, doc)
		return wrapWrite(err, "siteInfo/"+siteInfoDocID, "create", defaults)
	}
	if err != nil {
		return err
	}

	defDoc, err := toBsonMap(defaults)
	if err != nil {
		return err
	}
	missing := bson.M{}
	for k, v := range defDoc {
		if _, ok := stored[k]; !ok {
			missing[k] = v
		}
	}
	if len(missing) == 0 {
		return nil
	}
	_, err = r.col.UpdateOne(ctx, bson.M{"_id": siteInfoDocID}, bson.M{"$set": missing})
	return wrapWrite(err, "siteInfo/"+siteInfoDocID, "update", missing)
}

// Merge applies the admin edit field by field, creating the document if it
// does not exist yet.
func (r *SiteInfoRepo) Merge(ctx context.Context, upd domain.SiteInfoUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	set := bson.M{}
	for k, v := range map[string]*string{
		"siteName":          upd.SiteName,
		"heroTitle1":        upd.HeroTitle1,
		"heroTitle2":        upd.HeroTitle2,
		"heroLocation":      upd.HeroLocation,
		"heroSlogan":        upd.HeroSlogan,
		"heroPhone":         upd.HeroPhone,
		"heroPhoneDisplay":  upd.HeroPhoneDisplay,
		"heroLocation2":     upd.HeroLocation2,
		"heroPhone2":        upd.HeroPhone2,
		"heroPhoneDisplay2": upd.HeroPhoneDisplay2,
	} {
		if v != nil {
			set[k] = *v
		}
	}

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": siteInfoDocID},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	return wrapWrite(err, "siteInfo/"+siteInfoDocID, "update", upd)
}

func toBsonMap(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
