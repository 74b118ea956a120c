package models

type Project struct {
	Title    string   `json:"title"`
	Desc     string   `json:"desc"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
	Link     string   `json:"link"`
}

type SkillCategory struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type Experience struct {
	Title   string   `json:"title"`
	Company string   `json:"company"`
	Date    string   `json:"date"`
	Points  []string `json:"points"`
}

type Award struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type Certification struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Link   string `json:"link"`
}

type Contact struct {
	Email    string `json:"email"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

type Profile struct {
	Name           string          `json:"name"`
	Headline       string          `json:"headline"`
	Contact        Contact         `json:"contact"`
	Projects       []Project       `json:"projects"`
	Skills         []SkillCategory `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Awards         []Award         `json:"awards"`
	Certifications []Certification `json:"certifications"`
}
