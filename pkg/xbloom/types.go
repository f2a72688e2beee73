/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package xbloom

import "github.com/mchmarny/bloomctl/pkg/recipe"

// API endpoints. The mixed extensions are the vendor's, not ours:
// .thtml and .tuhtml endpoints take encrypted bodies, .html is public.
const (
	endpointLogin       = "tMemberLogin.thtml"
	endpointCreate      = "tuRecipeAdd.tuhtml"
	endpointListCreated = "tuMyTeaRecipeCreated.tuhtml"
	endpointShareDetail = "RecipeDetail.html"
)

// Fixed protocol fields.
const (
	// appKey is the vendor's hardcoded application key. It is not a
	// secret and not a session token; it is sent verbatim by every
	// client build.
	appKey = "testskey"

	// interfaceVersion is the protocol revision for encrypted calls.
	interfaceVersion = 20240918

	// shareInterfaceVersion is the (much older) revision the public
	// share endpoint expects.
	shareInterfaceVersion = 19700101

	clientTypeAndroid = 2
	languageEnglish   = 1
	phoneTypeAndroid  = "Android"
)

// Recipe create constants per the vendor app.
const (
	// subSetTypeManMade marks a user-authored recipe.
	subSetTypeManMade = 2
	// appPlaceMyRecipes files the recipe under the app's own-recipes section.
	appPlaceMyRecipes = 4
	// isShortcutsOff marks a regular recipe rather than a shortcut.
	isShortcutsOff = 2
)

// baseForm carries the fields every encrypted request starts from.
type baseForm struct {
	InterfaceVersion int    `json:"interfaceVersion"`
	Skey             string `json:"skey"`
	PhoneType        string `json:"phoneType"`
	MemberID         int64  `json:"memberId"`
	ClientType       int    `json:"clientType"`
	LanguageType     int    `json:"languageType"`
	Token            string `json:"token"`
}

// loginForm is the tMemberLogin request body (before encryption).
type loginForm struct {
	InterfaceVersion int    `json:"interfaceVersion"`
	Skey             string `json:"skey"`
	PhoneType        string `json:"phoneType"`
	ClientType       int    `json:"clientType"`
	LanguageType     int    `json:"languageType"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	JpushID          string `json:"jpushId"`
}

// createForm is the tuRecipeAdd request body (before encryption). The
// pour schedule travels as a JSON string inside the JSON form; that
// nesting is the vendor's wire contract.
type createForm struct {
	baseForm
	TheName             string  `json:"theName"`
	Dose                float64 `json:"dose"`
	GrandWater          float64 `json:"grandWater"`
	GrinderSize         float64 `json:"grinderSize"`
	RPM                 int     `json:"rpm"`
	CupType             int     `json:"cupType"`
	AdaptedModel        int     `json:"adaptedModel"`
	IsEnableBypassWater int     `json:"isEnableBypassWater"`
	IsSetGrinderSize    int     `json:"isSetGrinderSize"`
	TheColor            string  `json:"theColor"`
	TheSubsetID         int     `json:"theSubsetId"`
	BypassTemp          float64 `json:"bypassTemp"`
	BypassVolume        float64 `json:"bypassVolume"`
	SubSetType          int     `json:"subSetType"`
	AppPlace            []int   `json:"appPlace"`
	CreateTimeStamp     int64   `json:"createTimeStamp"`
	IsShortcuts         int     `json:"isShortcuts"`
	PourDataJSONStr     string  `json:"pourDataJSONStr"`
}

// listForm is the tuMyTeaRecipeCreated request body (before encryption).
type listForm struct {
	baseForm
	PageNumber   int `json:"pageNumber"`
	CountPerPage int `json:"countPerPage"`
	AdaptedModel int `json:"adaptedModel,omitempty"`
}

// shareDetailForm is the public RecipeDetail request body (plain JSON).
type shareDetailForm struct {
	TableIDOfRSA     string `json:"tableIdOfRSA"`
	InterfaceVersion int    `json:"interfaceVersion"`
	Skey             string `json:"skey"`
}

// member is the account object inside the login response.
type member struct {
	TableID int64  `json:"tableId"`
	TheName string `json:"theName"`
	Email   string `json:"email"`
}

// envelope is the vendor's response wrapper. result is "success" on the
// happy path; info carries the human-readable failure reason otherwise.
type envelope struct {
	Result          string               `json:"result"`
	Info            string               `json:"info"`
	Token           string               `json:"token"`
	Member          *member              `json:"member"`
	RecipeVo        *recipe.WireRecipe   `json:"recipeVo"`
	List            []*recipe.WireRecipe `json:"list"`
	ShareMemberName string               `json:"shareMemberName"`
	TableID         int64                `json:"tableId"`
	TheVersion      int64                `json:"theVersion"`
}

const resultSuccess = "success"

// SharedRecipe is a publicly shared recipe resolved from a share token.
type SharedRecipe struct {
	// Author is the display name of the sharing member.
	Author string `json:"author" yaml:"author"`

	// Recipe is the decoded recipe payload after re-keying.
	Recipe *recipe.Recipe `json:"recipe" yaml:"recipe"`
}

// CreateResult identifies a recipe the backend just created.
type CreateResult struct {
	// TableID is the backend's id for the new recipe.
	TableID int64 `json:"tableId" yaml:"tableId"`

	// Version is the backend's revision counter for the recipe.
	Version int64 `json:"version" yaml:"version"`
}
