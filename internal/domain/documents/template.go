package documents

import (
	"bytes"
	"fmt"
	"text/template"
	"time"
)

// LetterData is the full data set handed to the letter template.
type LetterData struct {
	FirmName      string
	FirmOrgNumber string

	ClientName      string
	ClientOrgNumber string

	Terms    Terms
	Version  int
	Rendered time.Time
}

// The oppdragsavtale body. Static Norwegian contract text conforming to the
// layout GRFS guidance expects; only the bracketed fields vary per client.
const letterTemplate = `<!DOCTYPE html>
<html lang="nb">
<head>
<meta charset="utf-8">
<title>Oppdragsavtale – {{.ClientName}}</title>
</head>
<body>
<h1>Oppdragsavtale</h1>
<p><strong>Versjon {{.Version}}</strong> – generert {{.Rendered.Format "02.01.2006"}}</p>

<h2>1. Parter</h2>
<p>Regnskapsfører: {{.FirmName}} (org.nr. {{.FirmOrgNumber}})<br>
Oppdragsgiver: {{.ClientName}} (org.nr. {{.ClientOrgNumber}})</p>

<h2>2. Oppdragets omfang</h2>
<p>Regnskapsfører skal utføre følgende tjenester for oppdragsgiver:</p>
<ul>
{{- range .Terms.ServiceScope}}
<li>{{.}}</li>
{{- end}}
</ul>

<h2>3. Honorar</h2>
<p>Tjenestene honoreres etter medgått tid med kr {{.Terms.HourlyRateNOK}},- per time
eks. mva. Fakturering skjer månedlig med {{.Terms.PaymentDays}} dagers betalingsfrist.</p>

<h2>4. Oppstart</h2>
<p>Avtalen gjelder fra {{.Terms.StartDate.Format "02.01.2006"}} og løper til den sies
opp av en av partene med tre måneders skriftlig varsel.</p>

<h2>5. Hvitvaskingsloven</h2>
<p>Regnskapsfører er underlagt lov om tiltak mot hvitvasking og
terrorfinansiering og vil gjennomføre kundetiltak før oppstart, herunder
bekreftelse av identitet og reelle rettighetshavere. Oppdragsgiver plikter å
fremlegge nødvendig dokumentasjon.</p>

<h2>6. Taushetsplikt og personvern</h2>
<p>Partene er gjensidig forpliktet til å bevare taushet om forhold de blir
kjent med gjennom oppdraget. Behandling av personopplysninger reguleres av
egen databehandleravtale.</p>

<h2>7. Ansvarlig regnskapsfører</h2>
<p>Oppdragsansvarlig hos regnskapsfører: {{.Terms.ResponsibleName}}</p>

<hr>
<table width="100%">
<tr>
<td>________________________<br>{{.FirmName}}</td>
<td>________________________<br>{{.ClientName}}</td>
</tr>
</table>
</body>
</html>
`

var letterTmpl = template.Must(template.New("oppdragsavtale").Parse(letterTemplate))

// RenderLetter assembles the engagement letter HTML for the given data.
func RenderLetter(data LetterData) ([]byte, error) {
	if err := data.Terms.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := letterTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render engagement letter: %w", err)
	}
	return buf.Bytes(), nil
}
