package testimonies

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Testimony is a user-submitted report about safety and discrimination
// experience in a visited country. Never mutated or deleted by this API.
type Testimony struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID                    string             `bson:"uid" json:"uid"`
	CountryVisited         string             `bson:"countryVisited" json:"countryVisited"`
	Villes                 string             `bson:"villes,omitempty" json:"villes,omitempty"`
	Temoignage             string             `bson:"temoignage" json:"temoignage"`
	SecurityRating         int                `bson:"securityRating,omitempty" json:"securityRating,omitempty"`
	ObservedDiscrimination string             `bson:"observedDiscrimination" json:"observedDiscrimination"`
	ContextDiscrimination  string             `bson:"contextDiscrimination,omitempty" json:"contextDiscrimination,omitempty"`
	Ethnie                 string             `bson:"ethnie,omitempty" json:"ethnie,omitempty"`
	Nationalite            string             `bson:"nationalite,omitempty" json:"nationalite,omitempty"`
	Communaute             string             `bson:"communaute,omitempty" json:"communaute,omitempty"`
	DateVoyage             string             `bson:"dateVoyage,omitempty" json:"dateVoyage,omitempty"`
	Recommande             string             `bson:"recommande,omitempty" json:"recommande,omitempty"`
	Anonyme                string             `bson:"anonyme" json:"anonyme"`
	Profil                 []string           `bson:"profil" json:"profil"`
	Frequence              []string           `bson:"frequence" json:"frequence"`
	CreatedAt              FlexTime           `bson:"createdAt" json:"createdAt"`
}

// CreateTestimonyRequest carries the client-supplied fields. The author uid
// and createdAt are always stamped server-side.
type CreateTestimonyRequest struct {
	CountryVisited         string   `json:"countryVisited" example:"France"`
	Villes                 string   `json:"villes,omitempty" example:"Paris, Lyon"`
	Temoignage             string   `json:"temoignage" example:"..."`
	SecurityRating         int      `json:"securityRating,omitempty" example:"4"`
	ObservedDiscrimination string   `json:"observedDiscrimination,omitempty" example:"Non"`
	ContextDiscrimination  string   `json:"contextDiscrimination,omitempty"`
	Ethnie                 string   `json:"ethnie,omitempty"`
	Nationalite            string   `json:"nationalite,omitempty"`
	Communaute             string   `json:"communaute,omitempty"`
	DateVoyage             string   `json:"dateVoyage,omitempty"`
	Recommande             string   `json:"recommande,omitempty" example:"Oui"`
	Anonyme                string   `json:"anonyme,omitempty" example:"Non"`
	Profil                 []string `json:"profil,omitempty"`
	Frequence              []string `json:"frequence,omitempty"`
}

// Testimony builds the stored record, applying field defaults.
func (req *CreateTestimonyRequest) Testimony(uid string) *Testimony {
	t := &Testimony{
		UID:                    uid,
		CountryVisited:         req.CountryVisited,
		Villes:                 req.Villes,
		Temoignage:             req.Temoignage,
		SecurityRating:         req.SecurityRating,
		ObservedDiscrimination: req.ObservedDiscrimination,
		ContextDiscrimination:  req.ContextDiscrimination,
		Ethnie:                 req.Ethnie,
		Nationalite:            req.Nationalite,
		Communaute:             req.Communaute,
		DateVoyage:             req.DateVoyage,
		Recommande:             req.Recommande,
		Anonyme:                req.Anonyme,
		Profil:                 req.Profil,
		Frequence:              req.Frequence,
	}

	if t.Anonyme == "" {
		t.Anonyme = "Non"
	}
	if t.ObservedDiscrimination == "" {
		t.ObservedDiscrimination = "Non"
	}
	if t.Profil == nil {
		t.Profil = []string{}
	}
	if t.Frequence == nil {
		t.Frequence = []string{}
	}

	return t
}
