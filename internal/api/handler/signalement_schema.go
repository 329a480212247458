package handler

// Request types carry the wire contract: French field names, enum values
// constrained to the closed sets via oneof tags. Records are returned as
// the domain entity, whose json tags define the response shape.

type createSignalementRequest struct {
	DateSignalement           string `json:"date_signalement"            validate:"omitempty,datetime=2006-01-02"`
	HeureSignalement          string `json:"heure_signalement"           validate:"omitempty,datetime=15:04:05"`
	NomAgent                  string `json:"nom_agent"                   validate:"required,min=1,max=100"`
	IDAgent                   string `json:"id_agent"                    validate:"required,min=1,max=50"`
	TypeEvenement             string `json:"type_evenement"              validate:"required,oneof=neighborhood-meeting social-media-post public-gathering other"`
	Gravite                   string `json:"gravite"                     validate:"required,oneof=low medium high"`
	Lieu                      string `json:"lieu"                        validate:"required,min=1,max=200"`
	SourceInformation         string `json:"source_information"          validate:"required,oneof=direct-observation informant social-media other"`
	SourceAutre               string `json:"source_autre"                validate:"omitempty,max=200"`
	ActionEntreprise          string `json:"action_entreprise"           validate:"required,oneof=observation alert-forwarded intervention other"`
	ActionAutre               string `json:"action_autre"                validate:"omitempty,max=200"`
	CommentaireComplementaire string `json:"commentaire_complementaire"`
}

// updateSignalementRequest is a partial payload: absent fields stay nil
// and leave the stored value unchanged.
type updateSignalementRequest struct {
	DateSignalement           *string `json:"date_signalement"            validate:"omitempty,datetime=2006-01-02"`
	HeureSignalement          *string `json:"heure_signalement"           validate:"omitempty,datetime=15:04:05"`
	NomAgent                  *string `json:"nom_agent"                   validate:"omitempty,min=1,max=100"`
	IDAgent                   *string `json:"id_agent"                    validate:"omitempty,min=1,max=50"`
	TypeEvenement             *string `json:"type_evenement"              validate:"omitempty,oneof=neighborhood-meeting social-media-post public-gathering other"`
	Gravite                   *string `json:"gravite"                     validate:"omitempty,oneof=low medium high"`
	Lieu                      *string `json:"lieu"                        validate:"omitempty,min=1,max=200"`
	SourceInformation         *string `json:"source_information"          validate:"omitempty,oneof=direct-observation informant social-media other"`
	SourceAutre               *string `json:"source_autre"                validate:"omitempty,max=200"`
	ActionEntreprise          *string `json:"action_entreprise"           validate:"omitempty,oneof=observation alert-forwarded intervention other"`
	ActionAutre               *string `json:"action_autre"                validate:"omitempty,max=200"`
	CommentaireComplementaire *string `json:"commentaire_complementaire"`
}

type statsResponse struct {
	Total        int64            `json:"total"`
	ParGravite   map[string]int64 `json:"par_gravite"`
	ParType      map[string]int64 `json:"par_type"`
	Aujourdhui   int64            `json:"aujourdhui"`
	Hier         int64            `json:"hier"`
	CetteSemaine int64            `json:"cette_semaine"`
	CeMois       int64            `json:"ce_mois"`
}

type deleteResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}
