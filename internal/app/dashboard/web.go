package dashboard

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/charts"
)

// Map viewport over Lebanon.
const (
	mapCenterLat = 33.95
	mapCenterLon = 35.85
	mapZoom      = 8
)

type indexData struct {
	Title        string
	Highlight    string
	MapCenterLat float64
	MapCenterLon float64
	MapZoom      int
}

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
body { font-family: sans-serif; margin: 1.5rem; }
#layout { display: flex; gap: 1.5rem; }
#controls { min-width: 220px; }
#map { height: 480px; flex: 1; }
#narrative { max-width: 260px; font-size: 15px; }
select[multiple] { width: 100%; height: 10rem; }
img.chart { max-width: 100%; display: block; margin-top: 1rem; }
footer { margin-top: 2rem; text-align: center; font-size: 14px; color: #555; }
</style>
</head>
<body>
<h1>Total Mumps Cases in Lebanon</h1>
<p>Each circle is a region; circle size is the region's total cases for the selected year.</p>
<div id="layout">
  <div id="controls">
    <h3>Select Year</h3>
    <input type="range" id="year" min="0" max="0" value="0">
    <div id="year-label"></div>
    <h3>Compare Regions</h3>
    <select id="regions" multiple></select>
  </div>
  <div id="map"></div>
  <div id="narrative"></div>
</div>
<h3>Mumps Trends Over Time by Region</h3>
<img class="chart" id="trends" alt="trend chart">
<h3>Total Mumps Cases by Region (All Years)</h3>
<img class="chart" id="rankings" src="/charts/rankings.png" alt="ranking chart">
<footer>For more information on these visualisations, contact the dataset maintainer.</footer>
<script>
const highlight = {{.Highlight}};
let years = [];
const map = L.map('map').setView([{{.MapCenterLat}}, {{.MapCenterLon}}], {{.MapZoom}});
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
let markers = [];

async function loadMap(year) {
  const rows = await (await fetch('/api/map?year=' + year)).json();
  markers.forEach(m => map.removeLayer(m));
  markers = rows.map(r => L.circleMarker([r.lat, r.lon], {
    radius: 5 + Math.sqrt(r.totalCases) * 2,
    color: 'red', fillColor: 'red', fillOpacity: 0.5
  }).bindTooltip(r.region + ': ' + r.totalCases + ' total cases').addTo(map));
}

function loadTrends() {
  const sel = Array.from(document.getElementById('regions').selectedOptions).map(o => o.value);
  const qs = sel.map(r => 'regions=' + encodeURIComponent(r)).join('&');
  document.getElementById('trends').src = '/charts/trends.png' + (qs ? '?' + qs : '');
}

async function init() {
  const overview = await (await fetch('/api/overview')).json();
  years = overview.years || [];
  const slider = document.getElementById('year');
  slider.max = Math.max(years.length - 1, 0);
  slider.oninput = () => {
    document.getElementById('year-label').textContent = years[slider.value];
    loadMap(years[slider.value]);
  };
  const select = document.getElementById('regions');
  (overview.regions || []).forEach(r => {
    const opt = document.createElement('option');
    opt.value = opt.textContent = r;
    opt.selected = r === highlight;
    select.appendChild(opt);
  });
  select.onchange = loadTrends;
  document.getElementById('narrative').innerHTML =
    'The lack of access to <strong>MMR vaccines</strong> in rural areas remains a critical ' +
    'challenge in Lebanon, with the highest number of recorded mumps cases in ' +
    '<strong>' + overview.topRegion + '</strong>.';
  slider.oninput();
  loadTrends();
}
init();
</script>
</body>
</html>
`))

func indexHandler(logger *zap.Logger) http.HandlerFunc {
	data := indexData{
		Title:        "Total Mumps Cases in Lebanon",
		Highlight:    charts.DefaultHighlight,
		MapCenterLat: mapCenterLat,
		MapCenterLon: mapCenterLon,
		MapZoom:      mapZoom,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexTmpl.Execute(w, data); err != nil {
			logger.Error("index render failed", zap.Error(err))
		}
	}
}
