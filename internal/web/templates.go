package web

// ── Base layout ───────────────────────────────────────────────────────────────

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>TB gen</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'Source Sans Pro',-apple-system,sans-serif;background:#fff;color:#31333f;font-size:14px;line-height:1.5}
a{color:#7A3777;text-decoration:none}
a:hover{text-decoration:underline}
nav{background:#f6f2f6;border-bottom:1px solid #e6dbe6;padding:10px 20px;display:flex;gap:18px;align-items:center;flex-wrap:wrap}
nav .brand{color:#7A3777;font-weight:700;font-size:16px;margin-right:10px}
nav a{color:#6d6e78;padding:4px 10px;border-radius:6px}
nav a:hover{color:#31333f;background:#ece2ec;text-decoration:none}
nav a.active{background:#7A3777;color:#fff}
main{padding:20px;max-width:1400px;margin:0 auto}
h1{font-size:22px;font-weight:700;color:#7A3777;margin-bottom:14px}
h2{font-size:17px;font-weight:600;color:#A65AA3;margin:22px 0 10px;padding-top:8px;border-top:3px solid #e6dbe6}
h3{font-size:14px;font-weight:600;color:#31333f;margin:12px 0 8px}
.caption{font-size:12px;color:#8b8d98;margin-bottom:10px}
.cards{display:flex;gap:12px;flex-wrap:wrap;margin:12px 0}
.card{background:#faf8fa;border:1px solid #e6dbe6;border-radius:8px;padding:12px 18px;min-width:140px}
.card .val{font-size:24px;font-weight:700;color:#31333f}
.card .lbl{font-size:11px;color:#8b8d98;margin-top:2px;text-transform:uppercase;letter-spacing:.04em}
button,.btn{background:#7A3777;border:none;color:#fff;padding:8px 16px;border-radius:6px;cursor:pointer;font-size:13px;display:inline-block}
button:hover,.btn:hover{background:#A65AA3;color:#fff;text-decoration:none}
.btn-row{display:flex;gap:10px;margin:10px 0;flex-wrap:wrap}
table{width:100%;border-collapse:collapse;font-size:13px}
th{text-align:left;padding:7px 10px;border-bottom:2px solid #e6dbe6;color:#6d6e78;font-weight:600;font-size:12px;position:sticky;top:0;background:#fff}
td{padding:6px 10px;border-bottom:1px solid #f0ecf0}
tr:hover td{background:#faf8fa}
.grid-wrap{max-height:600px;overflow:auto;border:1px solid #e6dbe6;border-radius:8px}
.warn{color:#8a6d3b;background:#fcf8e3;border:1px solid #faebcc;border-radius:6px;padding:10px 14px;margin:10px 0;display:none}
.info{color:#31708f;background:#d9edf7;border:1px solid #bce8f1;border-radius:6px;padding:10px 14px;margin:10px 0}
select{border:1px solid #e6dbe6;border-radius:6px;padding:7px 10px;font-size:13px;min-width:220px;background:#fff;color:#31333f}
.charts{display:flex;gap:24px;flex-wrap:wrap;margin:16px 0}
.chart{flex:1;min-width:380px}
.tabs{display:flex;gap:6px;border-bottom:2px solid #e6dbe6;margin:14px 0 0}
.tab{padding:8px 16px;border-radius:6px 6px 0 0;cursor:pointer;color:#6d6e78;background:none;font-size:13px}
.tab.active{background:#7A3777;color:#fff}
.tab-pane{display:none}
.tab-pane.active{display:block}
iframe.tree{width:100%;height:1000px;border:1px solid #e6dbe6;border-radius:0 8px 8px 8px;background:#fff}
#map{height:700px;border:1px solid #e6dbe6;border-radius:8px}
.home-buttons{display:flex;gap:14px;margin:24px 0}
hr{border:none;border-top:1px solid #e6dbe6;margin:14px 0}
</style>
{{block "head" .}}{{end}}
</head>
<body>
<nav>
  <span class="brand">&#129440; TB gen</span>
  <a href="/" {{if eq .Active "home"}}class="active"{{end}}>Home</a>
  <a href="/dataset" {{if eq .Active "dataset"}}class="active"{{end}}>Reference dataset</a>
  <a href="/phylogeny" {{if eq .Active "phylogeny"}}class="active"{{end}}>Phylogeny</a>
</nav>
<main>
{{template "content" .}}
</main>
</body>
</html>
{{end}}
`

// ── Home ──────────────────────────────────────────────────────────────────────

const tmplHome = `
{{define "content"}}
<h1>TB gen: Explore <em>Mycobacterium tuberculosis</em> complex</h1>
<hr>
<p>A reference collection of <em>M. tuberculosis</em> complex genomic samples:
browse the sample metadata, per-sample variant calls, summary statistics, and
the geographic distribution of isolates, or explore the per-lineage
phylogenetic trees.</p>
<div class="home-buttons">
  <a class="btn" href="/dataset">Reference Dataset</a>
  <a class="btn" href="/phylogeny">Explore Phylogeny</a>
  <a class="btn" href="/dataset#statistics">Sample Statistics</a>
</div>
{{end}}
`

// ── Reference dataset ─────────────────────────────────────────────────────────

const tmplDataset = `
{{define "head"}}
<script src="https://cdn.jsdelivr.net/npm/vega@5"></script>
<script src="https://cdn.jsdelivr.net/npm/vega-lite@5"></script>
<script src="https://cdn.jsdelivr.net/npm/vega-embed@6"></script>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
{{end}}
{{define "content"}}
<h1>Reference dataset of <em>Mycobacterium tuberculosis</em> complex isolates</h1>
<p><a href="#dataset">&#10122; Dataset</a> &nbsp; <a href="#statistics">&#10123; Statistics</a> &nbsp; <a href="#map-heading">&#10124; Map</a></p>

<h2 id="dataset">Dataset</h2>
<div class="caption">Reference Dataset</div>
<div class="cards">
  <div class="card"><div class="val">{{.Summary.TotalSamples}}</div><div class="lbl">Total Samples</div></div>
  <div class="card"><div class="val">{{.Summary.Countries}}</div><div class="lbl">Countries</div></div>
  <div class="card"><div class="val">{{.Summary.Lineages}}</div><div class="lbl">Main Lineages</div></div>
</div>
<div class="btn-row">
  <a class="btn" href="/api/v1/export?format=tsv">&#128190; Download dataset as TSV</a>
  <a class="btn" href="/api/v1/export?format=csv">&#128190; Download dataset as CSV</a>
</div>
<div class="grid-wrap"><table id="grid"><thead></thead><tbody></tbody></table></div>
<h3>Selected Samples</h3>
<div class="info" id="sel-hint">Select samples from the main table</div>
<div class="warn" id="sel-warn">&#9888; Subset selection is empty</div>
<div class="btn-row">
  <button id="dl-sel-tsv">&#128190; Download subset as TSV</button>
  <button id="dl-sel-csv">&#128190; Download subset as CSV</button>
</div>

<h2 id="statistics">Statistics</h2>
<div class="caption">Various Sample Statistics</div>
<select id="sample-sel">
{{range .SampleNames}}<option>{{.}}</option>{{end}}
</select>
<div class="cards" id="metric-cards"></div>
<h3>Variants</h3>
<div class="warn" id="vcf-warn">&#9888; VCF file is not available</div>
<div class="btn-row"><a class="btn" id="dl-vcf" href="#">Download calls in VCF format</a></div>
<div class="grid-wrap" style="max-height:360px"><table id="variants"><thead></thead><tbody></tbody></table></div>

<div class="charts">
  <div class="chart">
    <h3>Total Number of Samples per Lineage</h3>
    <div id="chart-samples" style="width:100%"></div>
  </div>
  <div class="chart">
    <h3>Average Number of SNPs per Lineage</h3>
    <div id="chart-snps" style="width:100%"></div>
  </div>
</div>

<h2 id="map-heading">Map Showing the Distribution of Samples</h2>
<div class="caption">Samples without information about the country of isolation are not shown</div>
<div id="map"></div>
<p><a href="#dataset">&#8679; Back to top</a></p>

<script>
vegaEmbed('#chart-snps', {{json .SNPChart}}, {actions: false});
vegaEmbed('#chart-samples', {{json .SampleChart}}, {actions: false});

const selected = new Set();

async function loadGrid() {
  const res = await fetch('/api/v1/samples');
  const data = await res.json();
  const head = document.querySelector('#grid thead');
  const body = document.querySelector('#grid tbody');
  head.innerHTML = '<tr><th></th>' + data.columns.map(c => '<th>' + c + '</th>').join('') + '</tr>';
  const keys = ['sample','country','level1','level2','level3','level4','level5',
                'snps','gc','totalSequences','avgSequenceLength','readsMapped','avgCoverageDepth'];
  body.innerHTML = data.samples.map(s =>
    '<tr><td><input type="checkbox" data-sample="' + s.sample + '"></td>' +
    keys.map(k => '<td>' + s[k] + '</td>').join('') + '</tr>').join('');
  body.querySelectorAll('input[type=checkbox]').forEach(cb => {
    cb.addEventListener('change', () => {
      if (cb.checked) selected.add(cb.dataset.sample); else selected.delete(cb.dataset.sample);
      document.getElementById('sel-hint').style.display = selected.size ? 'none' : 'block';
    });
  });
}

function downloadSubset(format) {
  const warn = document.getElementById('sel-warn');
  if (!selected.size) { warn.style.display = 'block'; return; }
  warn.style.display = 'none';
  const names = encodeURIComponent([...selected].join(','));
  window.location = '/api/v1/export?format=' + format + '&samples=' + names;
}
document.getElementById('dl-sel-tsv').addEventListener('click', () => downloadSubset('tsv'));
document.getElementById('dl-sel-csv').addEventListener('click', () => downloadSubset('csv'));

const metricDefs = [
  ['SNPs', 'snps'], ['GC %', 'gc'], ['Total Sequences', 'totalSequences'],
  ['Average sequence length', 'avgSequenceLength'], ['Mapped Reads %', 'readsMapped'],
  ['Average coverage depth', 'avgCoverageDepth'], ['Country of Isolation', 'country'],
  ['Level 1', 'level1'], ['Level 2', 'level2'], ['Level 3', 'level3'],
  ['Level 4', 'level4'], ['Level 5', 'level5']];

async function loadSample(name) {
  const res = await fetch('/api/v1/samples/' + encodeURIComponent(name));
  const s = await res.json();
  document.getElementById('metric-cards').innerHTML = metricDefs.map(([lbl, key]) =>
    '<div class="card"><div class="val">' + s[key] + '</div><div class="lbl">' + lbl + '</div></div>').join('');
  document.getElementById('dl-vcf').href = '/api/v1/samples/' + encodeURIComponent(name) + '/vcf';
  loadVariants(name);
}

async function loadVariants(name) {
  const warn = document.getElementById('vcf-warn');
  const head = document.querySelector('#variants thead');
  const body = document.querySelector('#variants tbody');
  const res = await fetch('/api/v1/samples/' + encodeURIComponent(name) + '/variants');
  if (!res.ok) {
    warn.style.display = 'block';
    head.innerHTML = ''; body.innerHTML = '';
    return;
  }
  warn.style.display = 'none';
  const vcf = await res.json();
  head.innerHTML = '<tr>' + vcf.columns.map(c => '<th>' + c + '</th>').join('') + '</tr>';
  body.innerHTML = (vcf.records || []).map(r => {
    const cells = [r.chrom, r.pos, r.id, r.ref, r.alt, r.qual, r.filter, r.info];
    if (r.format) cells.push(r.format);
    (r.samples || []).forEach(s => cells.push(s));
    return '<tr>' + cells.map(c => '<td>' + c + '</td>').join('') + '</tr>';
  }).join('');
}

const sampleSel = document.getElementById('sample-sel');
sampleSel.addEventListener('change', () => loadSample(sampleSel.value));

const regionColors = {};
const palette = ['#7A3777','#88AAC7','#BE9A5A','#5A8A6A','#C75A5A','#5A5AC7','#C7885A','#A65AA3'];
function regionColor(region) {
  if (!(region in regionColors)) regionColors[region] = palette[Object.keys(regionColors).length % palette.length];
  return regionColors[region];
}

async function loadMap() {
  const map = L.map('map').setView([20, 10], 2);
  L.tileLayer('https://{s}.basemaps.cartocdn.com/light_nolabels/{z}/{x}/{y}{r}.png',
    {attribution: '&copy; OpenStreetMap contributors &copy; CARTO'}).addTo(map);

  const chRes = await fetch('/api/v1/map/choropleth');
  const shapes = await chRes.json();
  let max = 1;
  shapes.features.forEach(f => { if (f.properties.sampleCount > max) max = f.properties.sampleCount; });
  L.geoJSON(shapes, {
    style: f => ({
      fillColor: '#7A3777',
      fillOpacity: 0.15 + 0.6 * f.properties.sampleCount / max,
      color: '#A65AA3', weight: 1
    }),
    onEachFeature: (f, layer) =>
      layer.bindPopup(f.properties.name + ': ' + f.properties.sampleCount + ' samples')
  }).addTo(map);

  const ptRes = await fetch('/api/v1/map/points');
  const data = await ptRes.json();
  (data.points || []).forEach(p => {
    L.circleMarker([p.latitude, p.longitude], {
      radius: 5, color: regionColor(p.region), fillOpacity: 0.8
    }).bindPopup(
      '<b>' + p.sample + '</b><br>' + p.country + ' (' + p.region + ')<br>' +
      [p.level1, p.level2, p.level3, p.level4, p.level5].filter(Boolean).join(' / ')
    ).addTo(map);
  });
}

loadGrid();
if (sampleSel.value) loadSample(sampleSel.value);
loadMap();
</script>
{{end}}
`

// ── Phylogeny ─────────────────────────────────────────────────────────────────

const tmplPhylogeny = `
{{define "content"}}
<h1><em>Mycobacterium tuberculosis</em> complex phylogeny</h1>
<p class="caption">The exterior vertical bars and names indicate lineage:
<span style="color:#333;font-weight:bold">black</span> &ndash; this study,
<span style="color:#BE9A5A;font-weight:bold">golden</span> &ndash;
<a href="https://doi.org/10.1186/S13073-020-00817-3" style="color:#BE9A5A">Napier <em>et al.</em> (2020)</a></p>
<div class="tabs">
{{range $i, $t := .Trees}}
  <button class="tab{{if eq $i 0}} active{{end}}" data-tree="{{$t.ID}}">{{$t.Label}}</button>
{{end}}
</div>
{{range $i, $t := .Trees}}
<div class="tab-pane{{if eq $i 0}} active{{end}}" id="pane-{{$t.ID}}">
  <iframe class="tree" loading="lazy" src="/trees/{{$t.ID}}"></iframe>
</div>
{{end}}
<script>
document.querySelectorAll('.tab').forEach(tab => {
  tab.addEventListener('click', () => {
    document.querySelectorAll('.tab').forEach(t => t.classList.remove('active'));
    document.querySelectorAll('.tab-pane').forEach(p => p.classList.remove('active'));
    tab.classList.add('active');
    document.getElementById('pane-' + tab.dataset.tree).classList.add('active');
  });
});
</script>
{{end}}
`
