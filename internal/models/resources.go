package models

// Message is the generic acknowledgement returned by delete endpoints.
type Message struct {
	Message string `json:"message"`
}

type Document struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Timestamp   string `json:"timestamp"`
}

type DocumentDataExample struct {
	ID                      int64              `json:"id"`
	DocumentID              string             `json:"document_id"`
	Data                    map[string]*string `json:"data"`
	DocumentDataExtractorID *int64             `json:"document_data_extractor_id"`
	StartPage               int                `json:"start_page"`
	EndPage                 *int               `json:"end_page"`
}

type DocumentDataExampleCreate struct {
	DocumentID              string             `json:"document_id"`
	Data                    map[string]*string `json:"data"`
	DocumentDataExtractorID *int64             `json:"document_data_extractor_id,omitempty"`
	StartPage               int                `json:"start_page"`
	EndPage                 *int               `json:"end_page,omitempty"`
}

type DocumentDataExampleUpdate struct {
	Data      map[string]*string `json:"data,omitempty"`
	StartPage *int               `json:"start_page,omitempty"`
	EndPage   *int               `json:"end_page,omitempty"`
}

type DocumentDataExtractorOut struct {
	ID                   int64                 `json:"id"`
	Name                 string                `json:"name"`
	Prompt               string                `json:"prompt"`
	Timestamp            string                `json:"timestamp"`
	OwnerID              int64                 `json:"owner_id"`
	ResponseTemplate     map[string]any        `json:"response_template,omitempty"`
	DocumentDataExamples []DocumentDataExample `json:"document_data_examples"`
}

type DocumentDataExtractorsOut struct {
	Data  []DocumentDataExtractorOut `json:"data"`
	Count int                        `json:"count"`
}

type DocumentDataExtractorCreate struct {
	Name             string         `json:"name"`
	Prompt           string         `json:"prompt"`
	ResponseTemplate map[string]any `json:"response_template,omitempty"`
}

type DocumentDataExtractorUpdate struct {
	Name             *string        `json:"name,omitempty"`
	Prompt           *string        `json:"prompt,omitempty"`
	ResponseTemplate map[string]any `json:"response_template,omitempty"`
}

type SettingOut struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	OwnerID   int64  `json:"owner_id"`
}

type SettingsOut struct {
	Data  []SettingOut `json:"data"`
	Count int          `json:"count"`
}

type SettingCreate struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Token is the bearer token issued by /login/access-token.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type NewPassword struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type UserOut struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	FullName    *string `json:"full_name"`
	IsActive    bool    `json:"is_active"`
	IsSuperuser bool    `json:"is_superuser"`
}
