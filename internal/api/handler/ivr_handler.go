package handler

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

// IVRHandler serves the phone-menu XML documents. The menus are static;
// there is no call-session state to track.
type IVRHandler struct{}

func NewIVRHandler() *IVRHandler {
	return &IVRHandler{}
}

type ivrResponse struct {
	XMLName xml.Name  `xml:"Response"`
	Say     []string  `xml:"Say"`
	Gather  *ivrGather `xml:"Gather,omitempty"`
}

type ivrGather struct {
	NumDigits int    `xml:"numDigits,attr"`
	Say       string `xml:"Say"`
}

var ivrMenus = map[string]string{
	"1": "Marketplace. Sell your products or browse listings on the EmpowerHer marketplace.",
	"2": "Tutorials. Learn tailoring, digital literacy and more through audio lessons.",
	"3": "Schemes. Hear about government schemes and finance programmes you may be eligible for.",
	"4": "Workshops. Find upcoming workshops in your village and register over the phone.",
}

// Welcome serves the IVR entry menu.
//
// @Summary      IVR welcome menu
// @Tags         ivr
// @Produce      xml
// @Success      200  {string}  string
// @Router       /api/ivr/welcome [get]
func (h *IVRHandler) Welcome(c echo.Context) error {
	return c.XML(http.StatusOK, ivrResponse{
		Say: []string{"Welcome to EmpowerHer."},
		Gather: &ivrGather{
			NumDigits: 1,
			Say:       "Press 1 for marketplace, 2 for tutorials, 3 for schemes, 4 for workshops.",
		},
	})
}

// Menu serves the submenu for a pressed digit. Unknown digits replay the
// welcome prompt instruction.
//
// @Summary      IVR submenu
// @Tags         ivr
// @Produce      xml
// @Param        digit  path      string  true  "Pressed digit"
// @Success      200    {string}  string
// @Router       /api/ivr/menu/{digit} [get]
func (h *IVRHandler) Menu(c echo.Context) error {
	text, ok := ivrMenus[c.Param("digit")]
	if !ok {
		text = "Sorry, that is not a valid choice. Press 1 for marketplace, 2 for tutorials, 3 for schemes, 4 for workshops."
	}
	return c.XML(http.StatusOK, ivrResponse{Say: []string{text}})
}
